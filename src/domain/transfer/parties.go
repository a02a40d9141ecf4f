package transfer

import "time"

type PersonTransfer struct {
	Record
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Pronouns  string     `json:"pronouns,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// EmployerID substitui a referência de volta para a organização.
	EmployerID *int64             `json:"employer_id,omitempty"`
	Emails     []*EmailTransfer   `json:"emails"`
	Phones     []*PhoneTransfer   `json:"phones"`
	Addresses  []*AddressTransfer `json:"addresses"`
}

func (*PersonTransfer) GetTypeName() string { return "PersonTransfer" }

type OrganizationTransfer struct {
	Record
	Name      string             `json:"name"`
	Website   string             `json:"website,omitempty"`
	Emails    []*EmailTransfer   `json:"emails"`
	Addresses []*AddressTransfer `json:"addresses"`
	Members   []*PersonTransfer  `json:"members"`
}

func (*OrganizationTransfer) GetTypeName() string { return "OrganizationTransfer" }

type UserTransfer struct {
	Record
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
}

func (*UserTransfer) GetTypeName() string { return "UserTransfer" }

type ContactTransfer struct {
	Record
	LinkedEntityRef
	Nickname string `json:"nickname,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Favorite bool   `json:"favorite"`
}

func (*ContactTransfer) GetTypeName() string { return "ContactTransfer" }
