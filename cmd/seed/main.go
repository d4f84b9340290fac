// seed genera una migración SQL para poblar el catálogo (tipos y grupos de
// máquina, repuestos) a partir de un CSV exportado del inventario existente.
//
// Uso: go run ./cmd/seed [ruta/repuestos.csv]
// Por defecto busca repuestos.csv en el directorio actual.
// Columnas esperadas: material_no, description, part_no, bin, cost_center,
// machine_type, price, stock, safety_stock.
// Escribe: internal/infrastructure/postgres/migrations/0002_seed_catalog.up.sql (y .down.sql)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	outUp   = "internal/infrastructure/postgres/migrations/0002_seed_catalog.up.sql"
	outDown = "internal/infrastructure/postgres/migrations/0002_seed_catalog.down.sql"
)

func main() {
	csvPath := "repuestos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	col := make(map[string]int)
	for i, name := range rows[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"material_no", "description", "machine_type"} {
		if _, ok := col[required]; !ok {
			fmt.Fprintf(os.Stderr, "Falta la columna %q en el CSV\n", required)
			os.Exit(1)
		}
	}

	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// Tipos de máquina únicos, ordenados para salida estable.
	typeSet := make(map[string]struct{})
	for _, row := range rows[1:] {
		if mt := get(row, "machine_type"); mt != "" {
			typeSet[mt] = struct{}{}
		}
	}
	var types []string
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	var b strings.Builder
	b.WriteString("-- Seed del catálogo generado por cmd/seed. No editar a mano.\n\n")
	for _, t := range types {
		fmt.Fprintf(&b, "INSERT INTO machine_types (machine) VALUES (%s) ON CONFLICT (machine) DO NOTHING;\n", quote(t))
	}
	b.WriteString("\n")

	var skipped int
	for _, row := range rows[1:] {
		materialNo := get(row, "material_no")
		description := get(row, "description")
		machineType := get(row, "machine_type")
		if materialNo == "" || description == "" || machineType == "" {
			skipped++
			continue
		}
		price, err := decimal.NewFromString(orZero(get(row, "price")))
		if err != nil {
			skipped++
			continue
		}
		fmt.Fprintf(&b,
			"INSERT INTO spare_parts (material_no, description, part_no, bin, cost_center, machine_type_id, price, stock, safety_stock, safety_stock_check)\n"+
				"SELECT %s, %s, %s, %s, %s, mt.id, %s, %s, %s, %s FROM machine_types mt WHERE mt.machine = %s\n"+
				"ON CONFLICT (material_no) DO NOTHING;\n",
			quote(materialNo), quote(description), quote(get(row, "part_no")),
			quote(get(row, "bin")), quote(get(row, "cost_center")),
			price.String(), orZero(get(row, "stock")), orZero(get(row, "safety_stock")),
			boolLit(get(row, "safety_stock") != "" && get(row, "safety_stock") != "0"),
			quote(machineType),
		)
	}

	if err := os.MkdirAll(filepath.Dir(outUp), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio de salida: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outUp, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outUp, err)
		os.Exit(1)
	}
	down := "DELETE FROM spare_parts;\nDELETE FROM machine_types;\n"
	if err := os.WriteFile(outDown, []byte(down), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outDown, err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s (%d tipos de máquina, %d filas omitidas)\n", outUp, len(types), skipped)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func boolLit(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
