// seed_products genera un script SQL para poblar el catálogo de productos de
// un comerciante a partir del CSV de un proveedor (separado por ';', columnas
// sku;nombre;peso_kg;min;max). Los exports de proveedores suelen venir en
// ISO-8859-1; se transcodifican a UTF-8 al leer.
//
// Uso: go run ./cmd/seed_products <merchant_id> [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_products.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	sku      string
	name     string
	weightKg decimal.Decimal
	minStock string
	maxStock string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_products <merchant_id> [productos.csv]")
		os.Exit(1)
	}
	merchantID := os.Args[1]
	if _, err := uuid.Parse(merchantID); err != nil {
		fmt.Fprintf(os.Stderr, "merchant_id inválido: %v\n", err)
		os.Exit(1)
	}
	csvPath := "productos.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []productRow
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		sku := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if sku == "" || name == "" || strings.EqualFold(sku, "sku") {
			continue // cabecera o fila vacía
		}
		row := productRow{sku: sku, name: name, minStock: "0", maxStock: "0"}
		if len(rec) > 2 {
			w, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(rec[2], ",", ".")))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Fila %d: peso inválido %q, se usa 0\n", i+1, rec[2])
				w = decimal.Zero
			}
			row.weightKg = w
		}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			row.minStock = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			row.maxStock = strings.TrimSpace(rec[4])
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene productos")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Catálogo de productos del comerciante %s\n", merchantID)
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(csvPath))

	out.WriteString("INSERT INTO products (id, merchant_id, sku, name, weight_kg, min_stock_level, max_stock_level, created_at, updated_at) VALUES\n")
	for i, row := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', %s, %s, %s, now(), now())%s\n",
			uuid.New().String(), merchantID,
			escapeSQL(row.sku), escapeSQL(row.name),
			row.weightKg.String(), row.minStock, row.maxStock, sep)
	}
	out.WriteString("ON CONFLICT (merchant_id, sku) DO UPDATE SET\n")
	out.WriteString("  name = EXCLUDED.name,\n")
	out.WriteString("  weight_kg = EXCLUDED.weight_kg,\n")
	out.WriteString("  min_stock_level = EXCLUDED.min_stock_level,\n")
	out.WriteString("  max_stock_level = EXCLUDED.max_stock_level,\n")
	out.WriteString("  updated_at = now();\n")

	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
