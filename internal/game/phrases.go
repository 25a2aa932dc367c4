package game

import (
	"fmt"
	"math/rand"
)

// numberPhrases maps a ball to its traditional calling phrase. The table is
// intentionally incomplete; numbers without an entry use the generic form.
var numberPhrases = map[int]string{
	1:  "El galán, el número uno",
	2:  "El patito, el dos",
	5:  "Los cinco lobitos",
	7:  "El revólver, el siete",
	10: "El diez, la primera decena",
	11: "Las banderillas, el once",
	12: "El doce, los doce meses del año",
	13: "El trece, para los supersticiosos",
	15: "La niña bonita, el quince",
	17: "El diecisiete, el santo de las solteras",
	20: "El veinte, dos decenas completas",
	22: "Los dos patitos, el veintidós",
	25: "La Navidad, el veinticinco",
	30: "El treinta, ni joven ni viejo",
	33: "La edad de Cristo, el treinta y tres",
	40: "El cuarenta, la cuarentena",
	44: "Las dos sillitas, el cuarenta y cuatro",
	45: "La media vuelta, el cuarenta y cinco",
	50: "La media centena, el cincuenta",
	55: "Los dos policías, el cincuenta y cinco",
	60: "El sesenta, la jubilación anticipada",
	66: "Las dos cerezas, el sesenta y seis",
	69: "Arriba y abajo, el sesenta y nueve",
	70: "El setenta, que viene el abuelo",
	75: "El setenta y cinco, tres cuartos de centena",
	77: "Las dos banderas, el setenta y siete",
	80: "El ochenta, la vuelta al ruedo",
	88: "Las dos gorditas, el ochenta y ocho",
	89: "El ochenta y nueve, casi lo tenemos",
	90: "El abuelo, el número noventa",
}

// ambientPhrases is the pool of flavor lines occasionally dropped between
// called numbers to keep the show lively.
var ambientPhrases = []string{
	"¡Qué emoción!",
	"Atención, atención.",
	"¡Vamos allá!",
	"La suerte está en el aire.",
	"Revisen sus cartones.",
	"¡Sigue la partida!",
	"Mucha atención ahora.",
	"¡Que no se escape ninguno!",
}

// NumberPhrase returns the traditional phrase for a ball, or the generic
// "El N" form when there is no entry.
func NumberPhrase(ball int) string {
	if p, ok := numberPhrases[ball]; ok {
		return p
	}
	return fmt.Sprintf("El %d", ball)
}

// AmbientPhrase picks one flavor phrase uniformly at random.
func AmbientPhrase(rng *rand.Rand) string {
	return ambientPhrases[rng.Intn(len(ambientPhrases))]
}
