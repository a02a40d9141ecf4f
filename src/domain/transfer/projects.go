package transfer

import "time"

type FeatureTransfer struct {
	Record
	FeatureName string `json:"feature_name"`
	IsEnabled   bool   `json:"is_enabled"`
	Description string `json:"description,omitempty"`
}

func (*FeatureTransfer) GetTypeName() string { return "FeatureTransfer" }

type ProjectTransfer struct {
	Record
	LinkedEntityRef
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Tasks       []*ProjectTaskTransfer `json:"tasks"`
	Features    []*FeatureTransfer     `json:"features"`
}

func (*ProjectTransfer) GetTypeName() string { return "ProjectTransfer" }

type ProjectTaskTransfer struct {
	Record
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (*ProjectTaskTransfer) GetTypeName() string { return "ProjectTaskTransfer" }
