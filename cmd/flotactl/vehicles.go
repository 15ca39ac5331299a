package main

import (
	"context"
	"flag"
	"fmt"

	"flotagest/internal/api"
	"flotagest/internal/dto"
	"flotagest/internal/listview"
	"flotagest/internal/model"
	"flotagest/internal/store"
	"flotagest/internal/view"
)

func runVehicles(client *api.Client, verb string, args []string) error {
	ctx := context.Background()
	st := store.NewVehicleStore(client)

	switch verb {
	case "list":
		return vehiclesList(ctx, st, args)
	case "create":
		return vehiclesCreate(ctx, st, args)
	case "update":
		return vehiclesUpdate(ctx, st, args)
	case "delete":
		return vehiclesDelete(ctx, st, args)
	default:
		return fmt.Errorf("verbo desconocido para vehicles: %q", verb)
	}
}

// The vehicles page fetches the full collection and filters client-side:
// per-column substrings ANDed with the global search.
func vehiclesList(ctx context.Context, st *store.VehicleStore, args []string) error {
	fs := flag.NewFlagSet("vehicles list", flag.ExitOnError)
	search := fs.String("buscar", "", "búsqueda global (placa, marca o modelo)")
	marca := fs.String("marca", "", "filtro por marca")
	modelo := fs.String("modelo", "", "filtro por modelo")
	placa := fs.String("placa", "", "filtro por placa")
	sortKey := fs.String("sort", "", "clave de orden: placa, marca o modelo")
	desc := fs.Bool("desc", false, "orden descendente")
	page := fs.Int("page", 1, "número de página")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := st.Fetch(ctx, dto.VehicleFilter{}); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al cargar los vehículos"))
	}

	state := listview.NewState[model.Vehicle](view.PageSize)
	preds := view.VehicleColumnFilters(*marca, *modelo, *placa)
	preds = append(preds, view.VehicleGlobalSearch(*search))
	state.SetFilters(preds...)

	if *sortKey != "" {
		acc, ok := view.VehicleSortAccessor(*sortKey)
		if !ok {
			return fmt.Errorf("clave de orden desconocida: %q", *sortKey)
		}
		dir := listview.Asc
		if *desc {
			dir = listview.Desc
		}
		state.SetSort(acc, dir)
	}

	vehicles := st.Vehicles()
	res := state.Apply(vehicles)
	if *page > 1 {
		// page count is known now, so this clamps into range
		state.SetPage(*page)
		res = state.Apply(vehicles)
	}

	w := newTab()
	fmt.Fprintln(w, "PLACA\tMARCA\tMODELO\tID")
	for _, v := range res.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Placa, v.Marca, v.Modelo, v.ID)
	}
	w.Flush()
	printPageFooter(state.Page(), view.PageSize, len(res.Items), res.Total, res.TotalPages)
	return nil
}

func vehiclesCreate(ctx context.Context, st *store.VehicleStore, args []string) error {
	fs := flag.NewFlagSet("vehicles create", flag.ExitOnError)
	marca := fs.String("marca", "", "marca del vehículo")
	modelo := fs.String("modelo", "", "modelo del vehículo")
	placa := fs.String("placa", "", "placa del vehículo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := dto.CreateVehicleRequest{Marca: *marca, Modelo: *modelo, Placa: *placa}
	if err := dto.Validate(req); err != nil {
		return validationErr(err)
	}

	created, err := st.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al crear el vehículo"))
	}
	fmt.Printf("Vehículo creado exitosamente: %s (%s)\n", created.Placa, created.ID)
	return nil
}

func vehiclesUpdate(ctx context.Context, st *store.VehicleStore, args []string) error {
	fs := flag.NewFlagSet("vehicles update", flag.ExitOnError)
	rawID := fs.String("id", "", "id del vehículo")
	marca := fs.String("marca", "", "marca del vehículo")
	modelo := fs.String("modelo", "", "modelo del vehículo")
	placa := fs.String("placa", "", "placa del vehículo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	req := dto.UpdateVehicleRequest{Marca: *marca, Modelo: *modelo, Placa: *placa}
	if err := dto.Validate(req); err != nil {
		return validationErr(err)
	}

	updated, err := st.Update(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al actualizar el vehículo"))
	}
	fmt.Printf("Vehículo actualizado exitosamente: %s\n", updated.Placa)
	return nil
}

func vehiclesDelete(ctx context.Context, st *store.VehicleStore, args []string) error {
	fs := flag.NewFlagSet("vehicles delete", flag.ExitOnError)
	rawID := fs.String("id", "", "id del vehículo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al eliminar el vehículo"))
	}
	fmt.Println("Vehículo eliminado exitosamente")
	return nil
}
