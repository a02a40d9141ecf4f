package transfer

type AccountTransfer struct {
	Record
	Name        string                `json:"name"`
	GUID        string                `json:"guid"`
	SubAccounts []*SubAccountTransfer `json:"sub_accounts"`
	// Groups não é de posse da conta; só os IDs atravessam o fio.
	GroupIDs []int64 `json:"group_ids"`
}

func (*AccountTransfer) GetTypeName() string { return "AccountTransfer" }

type SubAccountTransfer struct {
	Record
	LinkedEntityRef
	Name string `json:"name"`
}

func (*SubAccountTransfer) GetTypeName() string { return "SubAccountTransfer" }

type GroupTransfer struct {
	Record
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Members     []*MemberTransfer `json:"members"`
}

func (*GroupTransfer) GetTypeName() string { return "GroupTransfer" }

type MemberTransfer struct {
	Record
	Role      string         `json:"role"`
	AccountID int64          `json:"account_id"`
	Account   *EntitySummary `json:"account,omitempty"`
}

func (*MemberTransfer) GetTypeName() string { return "MemberTransfer" }
