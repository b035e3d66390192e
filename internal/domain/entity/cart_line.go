package entity

// CartLine cantidad reservada de un artículo en el carrito compartido.
// Nunca existe una línea con Quantity 0: se elimina en su lugar.
type CartLine struct {
	ItemID   string
	Quantity int
}

// CartLineView línea del carrito unida con la foto actual del artículo.
type CartLineView struct {
	Item     Item
	Quantity int
}
