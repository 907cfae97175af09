package domain

// Дистанция, на которой монстр бьет, а не идет (соседство, включая диагонали)
const MeleeRange = 1.5

// Радиус обзора по умолчанию
const DefaultVisionRange = 8

// Типы записей в журнале сообщений
const (
	LogTypeInfo   = "INFO"
	LogTypeCombat = "COMBAT"
	LogTypeError  = "ERROR"
)
