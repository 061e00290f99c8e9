package store

import (
	"time"

	"github.com/google/uuid"

	"insightdeck/internal/events/models"
)

// SeedEvents mints the prototype event set with fresh ids. Ages are relative
// to now so date filters stay meaningful regardless of when the process
// starts.
func SeedEvents(now time.Time) []models.InsightEvent {
	daysAgo := func(days int) time.Time {
		return now.Add(-time.Duration(days) * 24 * time.Hour)
	}

	base := []models.InsightEvent{
		{
			Title:       "Card-Not-Present Spike",
			Description: "Rapid increase in card-not-present transactions across east coast merchants.",
			Category:    "Fraud",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(2),
			Location:    models.Location{Lat: 40.7128, Lng: -74.006},
			Metrics:     models.Metrics{Score: 92, Confidence: 0.86, Impact: 72000},
			Tags:        []string{"payments", "anomaly", "card-not-present"},
		},
		{
			Title:       "Logistics Delay Cluster",
			Description: "Distribution centers reporting late departures beyond threshold.",
			Category:    "Ops",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(6),
			Location:    models.Location{Lat: 41.8781, Lng: -87.6298},
			Metrics:     models.Metrics{Score: 71, Confidence: 0.74, Impact: 18000},
			Tags:        []string{"supply-chain", "delay", "distribution"},
		},
		{
			Title:       "Critical Equipment Overheat",
			Description: "Temperature sensors exceeded safe limits for 12 minutes.",
			Category:    "Safety",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(1),
			Location:    models.Location{Lat: 34.0522, Lng: -118.2437},
			Metrics:     models.Metrics{Score: 95, Confidence: 0.9, Impact: 95000},
			Tags:        []string{"facility", "overheat", "sensor"},
		},
		{
			Title:       "Enrollment Drop-Off",
			Description: "Week-over-week decline in premium plan signups.",
			Category:    "Sales",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(9),
			Location:    models.Location{Lat: 29.7604, Lng: -95.3698},
			Metrics:     models.Metrics{Score: 63, Confidence: 0.68, Impact: 24000},
			Tags:        []string{"conversion", "pipeline", "plans"},
		},
		{
			Title:       "Respiratory Alert",
			Description: "ER visits trending above baseline in coastal region.",
			Category:    "Health",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(5),
			Location:    models.Location{Lat: 25.7617, Lng: -80.1918},
			Metrics:     models.Metrics{Score: 89, Confidence: 0.81, Impact: 61000},
			Tags:        []string{"public-health", "er", "respiratory"},
		},
		{
			Title:       "Store Footfall Surge",
			Description: "Downtown store traffic exceeded forecast by 28%.",
			Category:    "Sales",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(3),
			Location:    models.Location{Lat: 47.6062, Lng: -122.3321},
			Metrics:     models.Metrics{Score: 58, Confidence: 0.6, Impact: 12000},
			Tags:        []string{"retail", "footfall", "forecast"},
		},
		{
			Title:       "Sensor Calibration Drift",
			Description: "Manufacturing sensors showing drift beyond tolerance.",
			Category:    "Ops",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(12),
			Location:    models.Location{Lat: 39.7392, Lng: -104.9903},
			Metrics:     models.Metrics{Score: 69, Confidence: 0.72, Impact: 15000},
			Tags:        []string{"manufacturing", "calibration", "quality"},
		},
		{
			Title:       "Payment Gateway Timeouts",
			Description: "Timeout rate peaked at 4.2% during midday traffic.",
			Category:    "Ops",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(4),
			Location:    models.Location{Lat: 37.7749, Lng: -122.4194},
			Metrics:     models.Metrics{Score: 88, Confidence: 0.84, Impact: 54000},
			Tags:        []string{"payments", "latency", "gateway"},
		},
		{
			Title:       "Safety Training Lapse",
			Description: "Two sites missing required safety refresh training.",
			Category:    "Safety",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(18),
			Location:    models.Location{Lat: 33.4484, Lng: -112.074},
			Metrics:     models.Metrics{Score: 64, Confidence: 0.7, Impact: 11000},
			Tags:        []string{"compliance", "training", "risk"},
		},
		{
			Title:       "Chargeback Pattern Shift",
			Description: "New chargeback cluster tied to specific issuer.",
			Category:    "Fraud",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(7),
			Location:    models.Location{Lat: 32.7767, Lng: -96.797},
			Metrics:     models.Metrics{Score: 91, Confidence: 0.88, Impact: 68000},
			Tags:        []string{"chargeback", "issuer", "fraud"},
		},
		{
			Title:       "Inventory Stockout Risk",
			Description: "High velocity SKUs expected to stock out in 48 hours.",
			Category:    "Ops",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(8),
			Location:    models.Location{Lat: 39.9526, Lng: -75.1652},
			Metrics:     models.Metrics{Score: 84, Confidence: 0.79, Impact: 41000},
			Tags:        []string{"inventory", "forecast", "sku"},
		},
		{
			Title:       "Temperature Excursion",
			Description: "Cold chain temperature above threshold for 9 minutes.",
			Category:    "Safety",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(11),
			Location:    models.Location{Lat: 42.3601, Lng: -71.0589},
			Metrics:     models.Metrics{Score: 73, Confidence: 0.75, Impact: 16000},
			Tags:        []string{"cold-chain", "temperature", "logistics"},
		},
		{
			Title:       "Pipeline Stagnation",
			Description: "Enterprise pipeline velocity down 15% vs prior month.",
			Category:    "Sales",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(20),
			Location:    models.Location{Lat: 38.9072, Lng: -77.0369},
			Metrics:     models.Metrics{Score: 66, Confidence: 0.7, Impact: 27000},
			Tags:        []string{"pipeline", "velocity", "enterprise"},
		},
		{
			Title:       "Facility Incident Near-Miss",
			Description: "Near-miss reported in loading dock operations.",
			Category:    "Safety",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(10),
			Location:    models.Location{Lat: 36.1627, Lng: -86.7816},
			Metrics:     models.Metrics{Score: 90, Confidence: 0.82, Impact: 45000},
			Tags:        []string{"incident", "near-miss", "dock"},
		},
		{
			Title:       "Patient No-Show Increase",
			Description: "Clinic no-show rate increased to 12.5%.",
			Category:    "Health",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(14),
			Location:    models.Location{Lat: 39.7684, Lng: -86.1581},
			Metrics:     models.Metrics{Score: 55, Confidence: 0.62, Impact: 8000},
			Tags:        []string{"appointments", "no-show", "clinic"},
		},
		{
			Title:       "Unusual Refund Volume",
			Description: "Refund requests doubled for digital goods category.",
			Category:    "Fraud",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(13),
			Location:    models.Location{Lat: 30.2672, Lng: -97.7431},
			Metrics:     models.Metrics{Score: 77, Confidence: 0.76, Impact: 32000},
			Tags:        []string{"refund", "digital", "anomaly"},
		},
		{
			Title:       "Branch Traffic Decline",
			Description: "Foot traffic declined 19% in urban branch cluster.",
			Category:    "Sales",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(16),
			Location:    models.Location{Lat: 35.2271, Lng: -80.8431},
			Metrics:     models.Metrics{Score: 52, Confidence: 0.6, Impact: 9000},
			Tags:        []string{"branch", "traffic", "urban"},
		},
		{
			Title:       "Pharmacy Stock Disruption",
			Description: "Projected shortage for high-demand medications.",
			Category:    "Health",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(4),
			Location:    models.Location{Lat: 44.9778, Lng: -93.265},
			Metrics:     models.Metrics{Score: 87, Confidence: 0.8, Impact: 52000},
			Tags:        []string{"pharmacy", "shortage", "medication"},
		},
		{
			Title:       "Workforce Overtime Spike",
			Description: "Overtime hours exceeded weekly budget by 22%.",
			Category:    "Ops",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(15),
			Location:    models.Location{Lat: 36.1699, Lng: -115.1398},
			Metrics:     models.Metrics{Score: 70, Confidence: 0.73, Impact: 21000},
			Tags:        []string{"workforce", "overtime", "budget"},
		},
		{
			Title:       "Field Device Offline",
			Description: "Telemetry gaps detected in rural asset trackers.",
			Category:    "Ops",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(22),
			Location:    models.Location{Lat: 43.0389, Lng: -87.9065},
			Metrics:     models.Metrics{Score: 48, Confidence: 0.58, Impact: 6000},
			Tags:        []string{"iot", "telemetry", "offline"},
		},
		{
			Title:       "Emergency Room Surge",
			Description: "Unexpected surge in ER admissions overnight.",
			Category:    "Health",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(2),
			Location:    models.Location{Lat: 33.749, Lng: -84.388},
			Metrics:     models.Metrics{Score: 93, Confidence: 0.87, Impact: 68000},
			Tags:        []string{"er", "admissions", "surge"},
		},
		{
			Title:       "High-Risk Vendor Alert",
			Description: "Vendor risk score exceeded contractual threshold.",
			Category:    "Ops",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(19),
			Location:    models.Location{Lat: 45.5152, Lng: -122.6784},
			Metrics:     models.Metrics{Score: 82, Confidence: 0.78, Impact: 39000},
			Tags:        []string{"vendor", "risk", "contract"},
		},
		{
			Title:       "Upsell Conversion Lift",
			Description: "Upsell conversion improved after targeted campaign.",
			Category:    "Sales",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(8),
			Location:    models.Location{Lat: 39.9612, Lng: -82.9988},
			Metrics:     models.Metrics{Score: 60, Confidence: 0.67, Impact: 14000},
			Tags:        []string{"campaign", "upsell", "conversion"},
		},
		{
			Title:       "Anomalous Claims Velocity",
			Description: "Claims filed 2.3x higher in midwest region.",
			Category:    "Fraud",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(3),
			Location:    models.Location{Lat: 41.2565, Lng: -95.9345},
			Metrics:     models.Metrics{Score: 90, Confidence: 0.85, Impact: 64000},
			Tags:        []string{"claims", "velocity", "midwest"},
		},
		{
			Title:       "Service Desk Backlog",
			Description: "Ticket backlog crossed 7-day SLA in two queues.",
			Category:    "Ops",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(7),
			Location:    models.Location{Lat: 33.4484, Lng: -111.9941},
			Metrics:     models.Metrics{Score: 74, Confidence: 0.76, Impact: 23000},
			Tags:        []string{"service-desk", "sla", "backlog"},
		},
		{
			Title:       "Store Safety Audit",
			Description: "Audit flagged 3 critical items in north region.",
			Category:    "Safety",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(21),
			Location:    models.Location{Lat: 44.9537, Lng: -93.09},
			Metrics:     models.Metrics{Score: 85, Confidence: 0.8, Impact: 36000},
			Tags:        []string{"audit", "safety", "compliance"},
		},
		{
			Title:       "Churn Risk Climb",
			Description: "At-risk accounts increased following price change.",
			Category:    "Sales",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(13),
			Location:    models.Location{Lat: 32.7157, Lng: -117.1611},
			Metrics:     models.Metrics{Score: 72, Confidence: 0.71, Impact: 28000},
			Tags:        []string{"churn", "pricing", "accounts"},
		},
		{
			Title:       "Call Center Hold Time",
			Description: "Average hold time exceeded 6 minutes.",
			Category:    "Ops",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(5),
			Location:    models.Location{Lat: 27.9506, Lng: -82.4572},
			Metrics:     models.Metrics{Score: 68, Confidence: 0.69, Impact: 17000},
			Tags:        []string{"call-center", "sla", "experience"},
		},
		{
			Title:       "Adverse Reaction Signal",
			Description: "Signal detected for higher adverse reactions.",
			Category:    "Health",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(17),
			Location:    models.Location{Lat: 40.4406, Lng: -79.9959},
			Metrics:     models.Metrics{Score: 88, Confidence: 0.83, Impact: 47000},
			Tags:        []string{"pharma", "reaction", "signal"},
		},
		{
			Title:       "VIP Account Escalation",
			Description: "Multiple escalations from top-tier accounts.",
			Category:    "Sales",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(6),
			Location:    models.Location{Lat: 39.0997, Lng: -94.5786},
			Metrics:     models.Metrics{Score: 86, Confidence: 0.8, Impact: 52000},
			Tags:        []string{"vip", "escalation", "accounts"},
		},
		{
			Title:       "Warehouse Picking Error",
			Description: "Picking error rate above 3% for two shifts.",
			Category:    "Ops",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(9),
			Location:    models.Location{Lat: 35.1495, Lng: -90.049},
			Metrics:     models.Metrics{Score: 57, Confidence: 0.63, Impact: 9000},
			Tags:        []string{"warehouse", "quality", "picking"},
		},
		{
			Title:       "Network Intrusion Attempt",
			Description: "Spike in blocked intrusion attempts in perimeter.",
			Category:    "Fraud",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(1),
			Location:    models.Location{Lat: 47.6062, Lng: -122.3352},
			Metrics:     models.Metrics{Score: 96, Confidence: 0.9, Impact: 76000},
			Tags:        []string{"security", "intrusion", "network"},
		},
		{
			Title:       "Construction Safety Near Miss",
			Description: "Reported near miss on urban construction site.",
			Category:    "Safety",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(23),
			Location:    models.Location{Lat: 29.9511, Lng: -90.0715},
			Metrics:     models.Metrics{Score: 67, Confidence: 0.72, Impact: 19000},
			Tags:        []string{"construction", "near-miss", "site"},
		},
		{
			Title:       "Diagnostic Test Bottleneck",
			Description: "Diagnostics backlog increased in outpatient labs.",
			Category:    "Health",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(10),
			Location:    models.Location{Lat: 32.0835, Lng: -81.0998},
			Metrics:     models.Metrics{Score: 71, Confidence: 0.7, Impact: 22000},
			Tags:        []string{"diagnostics", "lab", "backlog"},
		},
		{
			Title:       "Premium Renewal Dip",
			Description: "Renewal rate down by 6 points in northeast region.",
			Category:    "Sales",
			Severity:    models.SeverityLow,
			CreatedAt:   daysAgo(25),
			Location:    models.Location{Lat: 42.8864, Lng: -78.8784},
			Metrics:     models.Metrics{Score: 49, Confidence: 0.58, Impact: 7000},
			Tags:        []string{"renewal", "northeast", "retention"},
		},
		{
			Title:       "Emergency Response Lag",
			Description: "Average response time exceeded target by 18%.",
			Category:    "Safety",
			Severity:    models.SeverityHigh,
			CreatedAt:   daysAgo(3),
			Location:    models.Location{Lat: 39.2904, Lng: -76.6122},
			Metrics:     models.Metrics{Score: 89, Confidence: 0.84, Impact: 43000},
			Tags:        []string{"response", "sla", "emergency"},
		},
		{
			Title:       "Revenue Leakage Signal",
			Description: "Usage not billed for 2.1% of accounts.",
			Category:    "Sales",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(12),
			Location:    models.Location{Lat: 37.3382, Lng: -121.8863},
			Metrics:     models.Metrics{Score: 78, Confidence: 0.77, Impact: 33000},
			Tags:        []string{"billing", "leakage", "usage"},
		},
		{
			Title:       "Safety PPE Non-Compliance",
			Description: "PPE compliance dropped to 92% for night shift.",
			Category:    "Safety",
			Severity:    models.SeverityMedium,
			CreatedAt:   daysAgo(6),
			Location:    models.Location{Lat: 40.7608, Lng: -111.891},
			Metrics:     models.Metrics{Score: 65, Confidence: 0.7, Impact: 14000},
			Tags:        []string{"ppe", "compliance", "shift"},
		},
	}

	for i := range base {
		base[i].ID = uuid.NewString()
	}
	return base
}
