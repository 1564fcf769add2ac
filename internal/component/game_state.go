package component

// Stats — счётчики текущей сессии для HUD.
type Stats struct {
	Fired   int // Выпущено снарядов
	Dropped int // Выстрелы, потерянные из-за полного буфера
	Hits    int // Попадания в игрока
	Dodged  int // Снаряды, ушедшие за левый край
}
