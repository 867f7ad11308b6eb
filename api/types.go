package api

// wireContainer is one entry of the request's "containers" array: a
// reusable template, not a concrete instantiated container.
type wireContainer struct {
	Name      *string    `json:"name"`
	Dims      [3]float64 `json:"dims"`
	MaxWeight float64    `json:"max_weight"`
}

// wireObject is one entry of the request's "objects" array.
type wireObject struct {
	ID     uint32     `json:"id"`
	Dims   [3]float64 `json:"dims"`
	Weight float64    `json:"weight"`
}

// packRequest is the decoded shape of a POST body to /v1/pack and
// /v1/pack/stream.
type packRequest struct {
	Containers     []wireContainer `json:"containers"`
	Objects        []wireObject    `json:"objects"`
	AllowRotations *bool           `json:"allow_rotations"`
}

// wirePlacement is one entry of a wireResult's "placed" array.
type wirePlacement struct {
	ID     uint32     `json:"id"`
	Pos    [3]float64 `json:"pos"`
	Weight float64    `json:"weight"`
	Dims   [3]float64 `json:"dims"`
}

// wireResult is one instantiated container in the batch response.
type wireResult struct {
	ID          int             `json:"id"` // 1-based, creation order
	TemplateID  *uint32         `json:"template_id"`
	Label       *string         `json:"label"`
	Dims        [3]float64      `json:"dims"`
	MaxWeight   float64         `json:"max_weight"`
	TotalWeight float64         `json:"total_weight"`
	Placed      []wirePlacement `json:"placed"`
}

// wireUnplaced is one entry of the batch response's "unplaced" array.
type wireUnplaced struct {
	ID     uint32 `json:"id"`
	Reason string `json:"reason"`
}

// wireDiagnosticsSummary mirrors diagnostics.Summary with wire field names.
type wireDiagnosticsSummary struct {
	MaxImbalanceRatio     float64 `json:"max_imbalance_ratio"`
	WorstSupportPercent   float64 `json:"worst_support_percent"`
	AverageSupportPercent float64 `json:"average_support_percent"`
}

// packResponse is the full batch response body.
type packResponse struct {
	Results            []wireResult           `json:"results"`
	Unplaced           []wireUnplaced         `json:"unplaced"`
	DiagnosticsSummary wireDiagnosticsSummary `json:"diagnostics_summary"`
}

// wireSupportSample mirrors diagnostics.SupportSample.
type wireSupportSample struct {
	ObjectID       uint32  `json:"object_id"`
	SupportPercent float64 `json:"support_percent"`
	RestsOnFloor   bool    `json:"rests_on_floor"`
}

// wireContainerDiagnostics mirrors diagnostics.ContainerDiagnostics.
type wireContainerDiagnostics struct {
	CentreOfMassOffset    float64             `json:"center_of_mass_offset"`
	BalanceLimit          float64             `json:"balance_limit"`
	ImbalanceRatio        float64             `json:"imbalance_ratio"`
	AverageSupportPercent float64             `json:"average_support_percent"`
	MinimumSupportPercent float64             `json:"minimum_support_percent"`
	SupportSamples        []wireSupportSample `json:"support_samples"`
}

// The five SSE event payloads. Each is rendered behind an "event:" line
// naming it (container_started, object_placed, container_diagnostics,
// object_rejected, finished) and a "data:" line carrying the JSON below.

type wireContainerStarted struct {
	ID         uint32     `json:"id"`
	Dims       [3]float64 `json:"dims"`
	MaxWeight  float64    `json:"max_weight"`
	Label      *string    `json:"label"`
	TemplateID uint32     `json:"template_id"`
}

type wireObjectPlaced struct {
	ContainerID uint32     `json:"container_id"`
	ID          uint32     `json:"id"`
	Pos         [3]float64 `json:"pos"`
	Weight      float64    `json:"weight"`
	Dims        [3]float64 `json:"dims"`
	TotalWeight float64    `json:"total_weight"`
}

type wireContainerDiagnosticsEvent struct {
	ContainerID uint32                   `json:"container_id"`
	Diagnostics wireContainerDiagnostics `json:"diagnostics"`
}

type wireObjectRejected struct {
	ID         uint32     `json:"id"`
	Weight     float64    `json:"weight"`
	Dims       [3]float64 `json:"dims"`
	ReasonCode string     `json:"reason_code"`
	ReasonText string     `json:"reason_text"`
}

type wireFinished struct {
	Containers         int                    `json:"containers"`
	Unplaced           int                    `json:"unplaced"`
	DiagnosticsSummary wireDiagnosticsSummary `json:"diagnostics_summary"`
}
