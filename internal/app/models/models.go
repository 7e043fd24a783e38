package models

// UnknownName is shown for references whose target no longer exists
const UnknownName = "Unknown"

// Entity is anything stored in a collection
type Entity interface {
	GetID() string
}

// Named is an entity with a display name
type Named interface {
	Entity
	GetName() string
}

// NameByID returns the name of the entity with the given id, or UnknownName
func NameByID[T Named](items []T, id string) string {
	for _, item := range items {
		if item.GetID() == id {
			return item.GetName()
		}
	}
	return UnknownName
}
