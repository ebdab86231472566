// Package repository implements GORM-backed persistence for the domain
// models. Lookups that find nothing return the sentinel errors from the
// domain package.
package repository
