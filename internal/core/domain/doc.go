// Package domain contains the core business entities for askdocs.
// These types are pure data with no dependencies on adapters or
// infrastructure, following ports and adapters architecture.
package domain
