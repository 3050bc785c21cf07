package invoice

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	numberPrefix = "CRF"
	suffixChars  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLen    = 4
)

// GenerateNumber genera un número de factura legible: "#" + prefijo fijo +
// últimos 6 dígitos del reloj en milisegundos + sufijo aleatorio base36.
// Único con probabilidad abrumadora pero NO garantizado; la colisión es un
// riesgo conocido y aceptado del esquema de generación.
func GenerateNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	suffix := make([]byte, suffixLen)
	for i := range suffix {
		suffix[i] = suffixChars[rand.Intn(len(suffixChars))]
	}
	return "#" + numberPrefix + ts + string(suffix)
}
