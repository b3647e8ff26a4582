package health

// ProbeDocument is the stable JSON shape for the bridge health probe
// output.
type ProbeDocument struct {
	Status             string               `json:"status"`
	Ready              bool                 `json:"ready"`
	SubsystemChecks    []SubsystemCheckJSON `json:"subsystem_checks"`
	DegradationReasons []string             `json:"degradation_reasons"`
}

// SubsystemCheckJSON is the wire shape of a single SubsystemCheck.
type SubsystemCheckJSON struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail"`
}

// BuildProbeDocument runs Compute and IsReady over checks and assembles
// the stable-key JSON document the health probe returns.
func BuildProbeDocument(checks []SubsystemCheck) ProbeDocument {
	overall := Compute(checks)
	ready := IsReady(checks)

	subsystems := make([]SubsystemCheckJSON, 0, len(checks))
	for _, c := range checks {
		subsystems = append(subsystems, SubsystemCheckJSON{Name: c.Name, Healthy: c.Healthy, Detail: c.Detail})
	}

	reasons := overall.DegradationReasons()
	if reasons == nil {
		reasons = []string{}
	}

	return ProbeDocument{
		Status:             overall.StatusString(),
		Ready:              ready,
		SubsystemChecks:    subsystems,
		DegradationReasons: reasons,
	}
}
