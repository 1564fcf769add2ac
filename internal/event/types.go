// internal/event/types.go
package event

const (
	ProjectileFired   EventType = "ProjectileFired"   // Башня выстрелила, Data: component.Projectile
	ProjectileDropped EventType = "ProjectileDropped" // Выстрел не поместился в буфер
	ProjectileExpired EventType = "ProjectileExpired" // Снаряд ушёл за левый край
	PlayerHit         EventType = "PlayerHit"         // Снаряд попал в игрока
	TargetingToggled  EventType = "TargetingToggled"  // Data: новый режим (bool)
)
