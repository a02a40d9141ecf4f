package transfer

import "time"

// Snapshot is the top-level document written by an export.
type Snapshot struct {
	GeneratedAt   time.Time               `json:"generated_at"`
	People        []*PersonTransfer       `json:"people"`
	Organizations []*OrganizationTransfer `json:"organizations"`
	Users         []*UserTransfer         `json:"users"`
	Contacts      []*ContactTransfer      `json:"contacts"`
	Accounts      []*AccountTransfer      `json:"accounts"`
	Groups        []*GroupTransfer        `json:"groups"`
	Projects      []*ProjectTransfer      `json:"projects"`
}
