package generators

// Cursor — очередь позиционных параметров вызывающего.
// Параметры расходуются слева направо по всему рекурсивному дереву
// генерации одной сущности, каждый не больше одного раза. Курсор
// передаётся указателем, поэтому вложенные вызовы видят общий остаток.
type Cursor struct {
	values []any
	pos    int
}

func NewCursor(values ...any) *Cursor {
	return &Cursor{values: values}
}

// Len — сколько параметров ещё не израсходовано.
func (c *Cursor) Len() int {
	return len(c.values) - c.pos
}

// Peek — следующий параметр без сдвига.
func (c *Cursor) Peek() (any, bool) {
	if c.pos >= len(c.values) {
		return nil, false
	}
	return c.values[c.pos], true
}

// Next — забирает следующий параметр и сдвигает курсор.
// Вызывать только после проверки Len() > 0.
func (c *Cursor) Next() any {
	v := c.values[c.pos]
	c.pos++
	return v
}
