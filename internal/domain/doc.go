// Package domain contains the core model for ariagrid: the cell index, the
// boundary policies and the focus cursor that moves across them.
//
// The domain is I/O-agnostic: it does not know about documents, terminals or
// files. Infra/adapters map into these types and carry out focus side effects.
package domain
