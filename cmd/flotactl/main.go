// flotactl is the terminal front-end for the fleet API: the three pages
// (vehículos, motoristas, registros) as subcommands, each driving its entity
// store and rendering the visible slice the list processor derives.
//
// Uso:
//
//	flotactl vehicles list|create|update|delete [flags]
//	flotactl drivers  list|active|create|update|delete [flags]
//	flotactl records  list|options|create|update|delete [flags]
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"flotagest/internal/api"
	"flotagest/internal/config"
	"flotagest/internal/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error de configuración:", err)
		os.Exit(1)
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout())
	entity, verb, args := os.Args[1], os.Args[2], os.Args[3:]

	var cmdErr error
	switch entity {
	case "vehicles":
		cmdErr = runVehicles(client, verb, args)
	case "drivers":
		cmdErr = runDrivers(client, verb, args)
	case "records":
		cmdErr = runRecords(client, verb, args)
	default:
		usage()
		os.Exit(2)
	}
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Uso: flotactl <vehicles|drivers|records> <verbo> [flags]

Verbos:
  vehicles  list, create, update, delete
  drivers   list, active, create, update, delete
  records   list, options, create, update, delete

La URL del API se toma de API_BASE_URL (default http://localhost:3000).`)
}

// pagination footer shared by the three list commands
func printPageFooter(page, pageSize, shown, total, totalPages int) {
	if total == 0 {
		fmt.Println("Sin resultados")
		return
	}
	first := (page-1)*pageSize + 1
	last := first + shown - 1
	if shown == 0 {
		first, last = 0, 0
	}
	fmt.Printf("Mostrando %d a %d de %d registros. Pág %d de %d\n",
		first, last, total, page, totalPages)
}

func newTab() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("id inválido: %q", raw)
	}
	return id, nil
}

// validationErr formats dto validation failures for the terminal, one field
// per line.
func validationErr(err error) error {
	fields := dto.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	msg := "datos inválidos:"
	for field, detail := range fields {
		msg += fmt.Sprintf("\n  %s: %s", field, detail)
	}
	return fmt.Errorf("%s", msg)
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}
