// Package catalog defines the normalized catalog item model and the
// row transformer that turns one decoded extract row into an Item.
//
// # Hierarchy
//
// Items live in a two-level hierarchy. A FAMILY is a parent record; an OPTION
// is a child record that may reference its family by federated identifier.
// The reference is kept locally on the Item (Family) and is never sent to the
// item store.
//
// # Transform
//
//	item, err := catalog.Transform(catalog.Row{
//	    "optionFederatedId": "O1",
//	    "familyFederatedId": "F1",
//	    "title":             "Chair",
//	})
//	// item.FederatedID == "O1", item.Roles == [OPTION], item.Family == "F1"
//
// A row without any identifier fails with a *MissingIdentifierError.
package catalog
