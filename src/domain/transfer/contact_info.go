package transfer

type EmailTransfer struct {
	Record
	Address   string `json:"address"`
	Label     string `json:"label,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

func (*EmailTransfer) GetTypeName() string { return "EmailTransfer" }

type PhoneTransfer struct {
	Record
	Number string `json:"number"`
	Label  string `json:"label,omitempty"`
}

func (*PhoneTransfer) GetTypeName() string { return "PhoneTransfer" }

type AddressTransfer struct {
	Record
	Street      string `json:"street"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code"`
}

func (*AddressTransfer) GetTypeName() string { return "AddressTransfer" }
