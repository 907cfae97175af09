package domain

import "github.com/yohamta/donburi"

// Одноразовые намерения. Живут в очередях мира и очищаются системой-потребителем в том же тике.

type WantsToMelee struct {
	Target donburi.Entity
}

type SufferDamage struct {
	Amount int
}

type WantsToPickupItem struct {
	CollectedBy donburi.Entity
	Item        donburi.Entity
}

type WantsToDropItem struct {
	Item donburi.Entity
}

type WantsToDrinkPotion struct {
	Potion donburi.Entity
}
