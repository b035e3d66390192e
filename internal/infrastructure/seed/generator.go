// Package seed genera el catálogo simulado que se carga al arrancar.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// MinItems tamaño mínimo del catálogo simulado.
const MinItems = 100

var (
	adjectives = []string{"Clásica", "Urbana", "Deportiva", "Vintage", "Premium", "Básica", "Oversize", "Slim", "Térmica", "Ligera"}
	garments   = []string{"Camiseta", "Sudadera", "Chaqueta", "Camisa", "Polo", "Pantalón", "Falda", "Vestido", "Chaleco", "Buzo"}
	materials  = []string{"algodón", "lino", "denim", "lana", "poliéster", "seda"}
	colors     = []string{"Negro", "Blanco", "Rojo", "Azul", "Verde", "Gris", "Beige", "Amarillo", "Morado", "Naranja"}
)

// Generate crea n artículos plausibles (como mínimo MinItems).
// Con la misma seed produce los mismos atributos; los ids siempre son uuid nuevos.
// seed 0 usa la hora actual.
func Generate(n int, seed int64) []*entity.Item {
	if n < MinItems {
		n = MinItems
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	sizes := entity.Sizes()

	items := make([]*entity.Item, 0, n)
	for i := 0; i < n; i++ {
		// precio entre 5.00 y 200.00 en centavos
		cents := 500 + rnd.Int63n(19_501)
		items = append(items, &entity.Item{
			ID: uuid.New().String(),
			Name: fmt.Sprintf("%s %s de %s",
				garments[rnd.Intn(len(garments))],
				adjectives[rnd.Intn(len(adjectives))],
				materials[rnd.Intn(len(materials))]),
			Color: colors[rnd.Intn(len(colors))],
			Size:  sizes[rnd.Intn(len(sizes))],
			Price: decimal.New(cents, -2),
			Stock: rnd.Intn(101),
		})
	}
	return items
}
