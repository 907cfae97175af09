package domain

// IsDead: смерть наступает при HP < 1
func (s *CombatStats) IsDead() bool {
	return s.HP < 1
}

// TakeDamage вычитает урон без нижней границы: отрицательное HP допустимо до зачистки
func (s *CombatStats) TakeDamage(amount int) {
	s.HP -= amount
}

// Heal лечит сущность, не поднимая HP выше MaxHP
func (s *CombatStats) Heal(amount int) {
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// MeleeDamageAgainst - урон по цели: сила минус защита, минимум 1
func (s *CombatStats) MeleeDamageAgainst(target *CombatStats) int {
	dmg := s.Power - target.Defense
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}
