package domain

// UserID is the backend's identifier for a user record. It is opaque to the client.
type UserID string

// SpotID identifies a parking spot as returned by the backend.
type SpotID string
