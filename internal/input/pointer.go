package input

// InField сообщает, попадает ли точка касания или клика в игровое поле
// fieldW x fieldH. Полоса кнопок под полем сюда не входит.
func InField(x, y int, fieldW, fieldH float64) bool {
	fx, fy := float64(x), float64(y)
	return fx >= 0 && fy >= 0 && fx < fieldW && fy < fieldH
}
