package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"flotagest/internal/api"
	"flotagest/internal/dto"
	"flotagest/internal/listview"
	"flotagest/internal/model"
	"flotagest/internal/store"
	"flotagest/internal/view"

	"github.com/google/uuid"
)

func runRecords(client *api.Client, verb string, args []string) error {
	ctx := context.Background()
	st := store.NewRecordStore(client)

	switch verb {
	case "list":
		return recordsList(ctx, st, args)
	case "options":
		return recordsOptions(ctx, st)
	case "create":
		return recordsCreate(ctx, st, args)
	case "update":
		return recordsUpdate(ctx, st, args)
	case "delete":
		return recordsDelete(ctx, st, args)
	default:
		return fmt.Errorf("verbo desconocido para records: %q", verb)
	}
}

// Record filters travel server-side; locally the page sorts (fecha
// descendente salvo que se indique otra clave) and paginates.
func recordsList(ctx context.Context, st *store.RecordStore, args []string) error {
	fs := flag.NewFlagSet("records list", flag.ExitOnError)
	rawVehicle := fs.String("vehiculo", "", "filtro por id de vehículo")
	rawDriver := fs.String("motorista", "", "filtro por id de motorista")
	tipo := fs.String("tipo", "", "filtro por tipo: entrada o salida")
	desde := fs.String("desde", "", "fecha inicial (YYYY-MM-DD)")
	hasta := fs.String("hasta", "", "fecha final inclusive (YYYY-MM-DD)")
	sortKey := fs.String("sort", "", "clave de orden: fecha, kilometraje, tipo, vehicle.placa o driver.nombre")
	desc := fs.Bool("desc", false, "orden descendente")
	page := fs.Int("page", 1, "número de página")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := dto.RecordFilter{Tipo: *tipo}
	if *rawVehicle != "" {
		id, err := parseID(*rawVehicle)
		if err != nil {
			return err
		}
		filter.VehicleID = &id
	}
	if *rawDriver != "" {
		id, err := parseID(*rawDriver)
		if err != nil {
			return err
		}
		filter.DriverID = &id
	}
	if *desde != "" {
		t, err := time.Parse(dto.DateLayout, *desde)
		if err != nil {
			return fmt.Errorf("fecha inválida para -desde: %q", *desde)
		}
		filter.StartDate = &t
	}
	if *hasta != "" {
		t, err := time.Parse(dto.DateLayout, *hasta)
		if err != nil {
			return fmt.Errorf("fecha inválida para -hasta: %q", *hasta)
		}
		filter.EndDate = &t
	}

	if err := st.Fetch(ctx, filter); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al cargar los registros"))
	}

	state := listview.NewState[model.Record](view.PageSize)
	if *sortKey != "" {
		acc, ok := view.RecordSortAccessor(*sortKey)
		if !ok {
			return fmt.Errorf("clave de orden desconocida: %q", *sortKey)
		}
		dir := listview.Asc
		if *desc {
			dir = listview.Desc
		}
		state.SetSort(acc, dir)
	} else {
		def := view.DefaultRecordSort()
		state.SetSort(def.Key, def.Direction)
	}

	records := st.Records()
	res := state.Apply(records)
	if *page > 1 {
		state.SetPage(*page)
		res = state.Apply(records)
	}

	w := newTab()
	fmt.Fprintln(w, "FECHA\tHORA\tTIPO\tKM\tVEHÍCULO\tMOTORISTA\tID")
	for _, r := range res.Items {
		placa, nombre := "-", "-"
		if r.Vehicle != nil {
			placa = r.Vehicle.Placa
		}
		if r.Driver != nil {
			nombre = r.Driver.Nombre
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\t%s\t%s\n",
			r.Fecha.Format(dto.DateLayout), r.Hora, r.Tipo, r.Kilometraje, placa, nombre, r.ID)
	}
	w.Flush()
	printPageFooter(state.Page(), view.PageSize, len(res.Items), res.Total, res.TotalPages)
	return nil
}

func recordsOptions(ctx context.Context, st *store.RecordStore) error {
	if err := st.FetchFilterOptions(ctx); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al cargar las opciones de filtro"))
	}
	opts := st.FilterOptions()

	w := newTab()
	fmt.Fprintln(w, "Vehículos:")
	fmt.Fprintln(w, "  PLACA\tMARCA\tMODELO\tID")
	for _, v := range opts.Vehicles {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", v.Placa, v.Marca, v.Modelo, v.ID)
	}
	fmt.Fprintln(w, "Motoristas activos:")
	fmt.Fprintln(w, "  NOMBRE\tLICENCIA\tID")
	for _, d := range opts.Drivers {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", d.Nombre, d.Licencia, d.ID)
	}
	w.Flush()
	return nil
}

func recordsCreate(ctx context.Context, st *store.RecordStore, args []string) error {
	fs := flag.NewFlagSet("records create", flag.ExitOnError)
	rawVehicle := fs.String("vehiculo", "", "id del vehículo")
	rawDriver := fs.String("motorista", "", "id del motorista")
	fecha := fs.String("fecha", "", "fecha (YYYY-MM-DD)")
	hora := fs.String("hora", "", "hora (HH:MM)")
	km := fs.Float64("km", 0, "kilometraje")
	tipo := fs.String("tipo", "", "tipo: entrada o salida")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vehicleID, err := parseID(*rawVehicle)
	if err != nil {
		return err
	}
	driverID, err := parseID(*rawDriver)
	if err != nil {
		return err
	}
	fechaT, err := time.Parse(dto.DateLayout, *fecha)
	if err != nil {
		return fmt.Errorf("fecha inválida: %q", *fecha)
	}

	form := dto.RecordForm{
		VehicleID:   vehicleID,
		DriverID:    driverID,
		Fecha:       fechaT,
		Hora:        *hora,
		Kilometraje: *km,
		Tipo:        *tipo,
	}
	req := form.CreatePayload()
	if err := dto.Validate(req); err != nil {
		return validationErr(err)
	}

	created, err := st.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al crear el registro"))
	}
	fmt.Printf("Registro creado exitosamente: %s %s (%s)\n",
		created.Fecha.Format(dto.DateLayout), created.Tipo, created.ID)
	return nil
}

// recordsUpdate sends only the flags the user actually passed; unset fields
// stay untouched on the server.
func recordsUpdate(ctx context.Context, st *store.RecordStore, args []string) error {
	fs := flag.NewFlagSet("records update", flag.ExitOnError)
	rawID := fs.String("id", "", "id del registro")
	rawVehicle := fs.String("vehiculo", "", "id del vehículo")
	rawDriver := fs.String("motorista", "", "id del motorista")
	fecha := fs.String("fecha", "", "fecha (YYYY-MM-DD)")
	hora := fs.String("hora", "", "hora (HH:MM)")
	km := fs.Float64("km", 0, "kilometraje")
	tipo := fs.String("tipo", "", "tipo: entrada o salida")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	var req dto.UpdateRecordRequest
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch f.Name {
		case "vehiculo":
			var vid uuid.UUID
			if vid, parseErr = parseID(*rawVehicle); parseErr == nil {
				req.VehicleID = &vid
			}
		case "motorista":
			var did uuid.UUID
			if did, parseErr = parseID(*rawDriver); parseErr == nil {
				req.DriverID = &did
			}
		case "fecha":
			var t time.Time
			if t, parseErr = time.Parse(dto.DateLayout, *fecha); parseErr != nil {
				parseErr = fmt.Errorf("fecha inválida: %q", *fecha)
				return
			}
			req.Fecha = &t
		case "hora":
			req.Hora = hora
		case "km":
			req.Kilometraje = km
		case "tipo":
			normalized := dto.NormalizeTipo(*tipo)
			req.Tipo = &normalized
		}
	})
	if parseErr != nil {
		return parseErr
	}
	if err := dto.Validate(req); err != nil {
		return validationErr(err)
	}

	updated, err := st.Update(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al actualizar el registro"))
	}
	fmt.Printf("Registro actualizado exitosamente: %s\n", updated.ID)
	return nil
}

func recordsDelete(ctx context.Context, st *store.RecordStore, args []string) error {
	fs := flag.NewFlagSet("records delete", flag.ExitOnError)
	rawID := fs.String("id", "", "id del registro")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al eliminar el registro"))
	}
	fmt.Println("Registro eliminado exitosamente")
	return nil
}
