package launchplan

// NoWindowsMessage is what tools print when a scan returns no candidates.
const NoWindowsMessage = "No optimal windows found in this range."

// TransferRecord is the flat presentation of a TransferSolution.
// Distances and times are rounded to 2 decimals, delta-v values to 4 decimals.
type TransferRecord struct {
	Source          string  `json:"source"`
	Target          string  `json:"target"`
	DepartureDate   string  `json:"departure_date"`
	TransferTime    float64 `json:"hohmann_transfer_time_days"`
	DeltaVTotal     float64 `json:"delta_v_total_km_s"`
	DeltaVDeparture float64 `json:"delta_v_departure_km_s"`
	DeltaVArrival   float64 `json:"delta_v_arrival_km_s"`
	SemiMajorAxis   float64 `json:"semi_major_axis_km"`
	R1              float64 `json:"r1_km"`
	R2              float64 `json:"r2_km"`
}

// Record returns the rounded presentation of this solution.
func (s TransferSolution) Record() TransferRecord {
	return TransferRecord{
		Source:          s.Source.Name,
		Target:          s.Target.Name,
		DepartureDate:   s.Departure.String(),
		TransferTime:    round2(s.TransferTime),
		DeltaVTotal:     round4(s.DeltaVTotal),
		DeltaVDeparture: round4(s.DeltaVDeparture),
		DeltaVArrival:   round4(s.DeltaVArrival),
		SemiMajorAxis:   round2(s.SemiMajorAxis),
		R1:              round2(s.R1),
		R2:              round2(s.R2),
	}
}

// WindowRecord is the flat presentation of a LaunchWindowCandidate, separation rounded to 2 decimals.
type WindowRecord struct {
	Date       string  `json:"date"`
	Separation float64 `json:"angular_separation_deg"`
}

// Record returns the rounded presentation of this candidate.
func (c LaunchWindowCandidate) Record() WindowRecord {
	return WindowRecord{Date: c.Date.String(), Separation: round2(c.Separation)}
}

// WindowReport is the presentation of a launch window scan. Dates is always a list, possibly empty.
type WindowReport struct {
	Source    string         `json:"source_planet"`
	Target    string         `json:"target_planet"`
	Threshold float64        `json:"threshold_deg"`
	Dates     []WindowRecord `json:"suggested_launch_dates"`
}

// NewWindowReport returns the report of the candidates found between both bodies.
func NewWindowReport(src, tgt Body, thresholdDeg float64, candidates []LaunchWindowCandidate) WindowReport {
	report := WindowReport{Source: src.Name, Target: tgt.Name, Threshold: thresholdDeg, Dates: make([]WindowRecord, len(candidates))}
	for i, c := range candidates {
		report.Dates[i] = c.Record()
	}
	return report
}

// Empty returns whether no window was found.
func (r WindowReport) Empty() bool {
	return len(r.Dates) == 0
}

// PropellantRecord is the flat presentation of a PropellantEstimate, all values rounded to 2 decimals.
type PropellantRecord struct {
	DeltaV               float64 `json:"delta_v_required_m_per_s"`
	Isp                  float64 `json:"specific_impulse_s"`
	PayloadMass          float64 `json:"payload_mass_kg"`
	PropellantMass       float64 `json:"propellant_mass_kg"`
	InitialMass          float64 `json:"initial_mass_kg"`
	PropellantPercentage float64 `json:"propellant_percentage"`
}

// Record returns the rounded presentation of this estimate.
func (p PropellantEstimate) Record() PropellantRecord {
	return PropellantRecord{
		DeltaV:               round2(p.DeltaV),
		Isp:                  round2(p.Isp),
		PayloadMass:          round2(p.PayloadMass),
		PropellantMass:       round2(p.PropellantMass),
		InitialMass:          round2(p.InitialMass),
		PropellantPercentage: round2(100 * p.PropellantFraction),
	}
}
