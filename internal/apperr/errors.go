// Package apperr defines sentinel errors shared by the record services.
// Handlers translate them into HTTP status codes with errors.Is, so a
// service can wrap them with context (entity name, id) without losing the
// classification.
package apperr

import "errors"

// ErrNotFound is returned when the requested entity does not exist.
// Handlers translate it into a 404 response.
var ErrNotFound = errors.New("introuvable")

// ErrConflict is returned when a creation would violate a business-level
// uniqueness rule (surnom, designation, titre, email). Handlers translate
// it into a 409 response.
var ErrConflict = errors.New("conflit")

// ErrInvalidReference is returned when a required parent reference (the
// user of a customer, the customer of a sale) does not resolve at creation
// time. It maps to 400, not 404: the missing entity is part of the payload,
// not the requested resource.
var ErrInvalidReference = errors.New("référence invalide")

// ErrUnauthenticated is returned when credentials are absent or wrong.
// Handlers translate it into a 401 response.
var ErrUnauthenticated = errors.New("authentification requise")
