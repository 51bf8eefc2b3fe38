package entity

// Serializer projects a persisted record into a plain map keyed by column
// name, suitable for external transmission.
type Serializer interface {
	Serialize() map[string]any
}

// All returns one zero value of every model, in dependency order.
func All() []any {
	return []any{
		&User{},
		&Follower{},
		&Post{},
		&Media{},
		&Comment{},
	}
}
