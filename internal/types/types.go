package types

// EntityID identifies an entity inside one ECS. Ids are never reused.
type EntityID uint64
