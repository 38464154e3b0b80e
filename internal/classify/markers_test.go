package classify

import (
	"reflect"
	"testing"

	"github.com/integridai/culturacheck/internal/model"
)

func TestExtractMarkers_PerMarker(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   bool
	}{
		{"diminutive ito", "un regalito para vos", model.MarkerDiminutivo, true},
		{"diminutive cito", "un consultorcito amigo", model.MarkerDiminutivo, true},
		{"diminutive illa", "la planilla de gastos", model.MarkerDiminutivo, true},
		{"no diminutive", "el informe trimestral", model.MarkerDiminutivo, false},
		{"family cunado", "mi cuñado lo resuelve", model.MarkerFamilia, true},
		{"family suegra", "la suegra del gerente", model.MarkerFamilia, true},
		{"no family", "el directorio lo aprueba", model.MarkerFamilia, false},
		{"euphemism gestionar", "lo podemos gestionar", model.MarkerEufemismo, true},
		{"euphemism llegada", "tenemos llegada al ministerio", model.MarkerEufemismo, true},
		{"no euphemism", "el contrato firmado ayer", model.MarkerEufemismo, false},
		{"informality che", "che, vení un segundo", model.MarkerInformalidad, true},
		{"informality barbaro", "bárbaro, lo hacemos", model.MarkerInformalidad, true},
		{"no informality", "estimados señores", model.MarkerInformalidad, false},
		{"minimization no pasa nada", "no pasa nada con eso", model.MarkerMinimizacion, true},
		{"minimization solo", "es solo un favor", model.MarkerMinimizacion, true},
		{"no minimization", "requiere doble firma", model.MarkerMinimizacion, false},
		{"tradition asado", "el asado del viernes", model.MarkerTradicion, true},
		{"tradition parrilla", "vamos a la parrilla", model.MarkerTradicion, true},
		{"no tradition", "el presupuesto anual", model.MarkerTradicion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markers := ExtractMarkers(Fold(tt.text))
			got := false
			for _, m := range markers {
				if m == tt.marker {
					got = true
				}
			}
			if got != tt.want {
				t.Errorf("ExtractMarkers(%q): marker %s present=%v, want %v (all: %v)",
					tt.text, tt.marker, got, tt.want, markers)
			}
		})
	}
}

func TestExtractMarkers_SubsetAndOrder(t *testing.T) {
	// Every returned name must be a defined marker, in definition order
	text := "dale, un asadito con mi cuñado, lo arreglamos tranquilo"
	markers := ExtractMarkers(Fold(text))

	defined := make(map[string]int)
	for i, name := range MarkerNames() {
		defined[name] = i
	}

	last := -1
	for _, m := range markers {
		idx, ok := defined[m]
		if !ok {
			t.Fatalf("undefined marker name %q", m)
		}
		if idx <= last {
			t.Errorf("markers out of definition order: %v", markers)
		}
		last = idx
	}
}

func TestExtractMarkers_AccentInsensitive(t *testing.T) {
	accented := ExtractMarkers(Fold("mi cuñado maneja los viáticos"))
	plain := ExtractMarkers(Fold("mi cunado maneja los viaticos"))

	if !reflect.DeepEqual(accented, plain) {
		t.Errorf("accented %v != unaccented %v", accented, plain)
	}
	if len(accented) == 0 {
		t.Fatal("expected markers for family + euphemism text")
	}
}

func TestExtractMarkers_Independent(t *testing.T) {
	// "regalito" fires both the diminutive and the euphemism marker;
	// neither suppresses the other.
	markers := ExtractMarkers(Fold("un regalito"))

	want := []string{model.MarkerDiminutivo, model.MarkerEufemismo}
	if !reflect.DeepEqual(markers, want) {
		t.Errorf("got %v, want %v", markers, want)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cuñado", "cunado"},
		{"CONSULTORÍA", "consultoria"},
		{"viáticos", "viaticos"},
		{"ya normalizado", "ya normalizado"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
