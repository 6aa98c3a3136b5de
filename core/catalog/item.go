package catalog

// Role is the position of an item in the family/option hierarchy.
type Role string

const (
	// RoleFamily marks a parent record.
	RoleFamily Role = "FAMILY"
	// RoleOption marks a child record.
	RoleOption Role = "OPTION"
)

const (
	// DefaultName is the name given to synthesized family records.
	DefaultName = "Generic item name"
	// DefaultDescription is the description given to synthesized family records.
	DefaultDescription = "Generic item description"
)

// Item is a normalized catalog entry.
type Item struct {
	// Name is the display name of the item.
	Name string `json:"name"`

	// Description is the long form text of the item.
	Description string `json:"description"`

	// FederatedID is the external business key of the item.
	FederatedID string `json:"federatedId"`

	// Roles holds the hierarchy roles of the item. Never empty for
	// items produced by Transform.
	Roles []Role `json:"roles"`

	// Family is the federated id of the parent family referenced by an
	// OPTION row. It is local bookkeeping only.
	Family string `json:"-"`
}

// HasRole reports whether the item carries the given role.
func (i Item) HasRole(r Role) bool {
	for _, role := range i.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// Equal compares the visible business fields of two items.
// Identity and roles are not compared: the store is authoritative for the id,
// and stored records may predate the hierarchy.
func (i Item) Equal(other Item) bool {
	return i.Name == other.Name && i.Description == other.Description
}

// StoredItem is an Item together with the identity assigned by the item store.
type StoredItem struct {
	// ID is the store-assigned identity. Empty for records synthesized
	// locally and not yet confirmed by the store.
	ID string `json:"id"`
	Item
}

// NewFamilyPlaceholder returns the synthesized family record used when a
// family referenced by the extract is unknown to the store.
func NewFamilyPlaceholder(federatedID string) Item {
	return Item{
		Name:        DefaultName,
		Description: DefaultDescription,
		FederatedID: federatedID,
		Roles:       []Role{RoleFamily},
	}
}
