package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"flotagest/internal/api"
	"flotagest/internal/dto"
	"flotagest/internal/listview"
	"flotagest/internal/model"
	"flotagest/internal/store"
	"flotagest/internal/view"
)

func runDrivers(client *api.Client, verb string, args []string) error {
	ctx := context.Background()
	st := store.NewDriverStore(client)

	switch verb {
	case "list":
		return driversList(ctx, st, args)
	case "active":
		return driversActive(ctx, st)
	case "create":
		return driversCreate(ctx, st, args)
	case "update":
		return driversUpdate(ctx, st, args)
	case "delete":
		return driversDelete(ctx, st, args)
	default:
		return fmt.Errorf("verbo desconocido para drivers: %q", verb)
	}
}

// Driver filters travel server-side as query parameters; locally the page
// only sorts and paginates.
func driversList(ctx context.Context, st *store.DriverStore, args []string) error {
	fs := flag.NewFlagSet("drivers list", flag.ExitOnError)
	nombre := fs.String("nombre", "", "filtro por nombre")
	licencia := fs.String("licencia", "", "filtro por licencia")
	activo := fs.String("activo", "", "filtro por estado: true o false")
	sortKey := fs.String("sort", "", "clave de orden: nombre, licencia o activo")
	desc := fs.Bool("desc", false, "orden descendente")
	page := fs.Int("page", 1, "número de página")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := dto.DriverFilter{Nombre: *nombre, Licencia: *licencia}
	if *activo != "" {
		b, err := strconv.ParseBool(*activo)
		if err != nil {
			return fmt.Errorf("valor inválido para -activo: %q", *activo)
		}
		filter.Activo = &b
	}

	if err := st.Fetch(ctx, filter); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al cargar los motoristas"))
	}

	state := listview.NewState[model.Driver](view.PageSize)
	if *sortKey != "" {
		acc, ok := view.DriverSortAccessor(*sortKey)
		if !ok {
			return fmt.Errorf("clave de orden desconocida: %q", *sortKey)
		}
		dir := listview.Asc
		if *desc {
			dir = listview.Desc
		}
		state.SetSort(acc, dir)
	}

	drivers := st.Drivers()
	res := state.Apply(drivers)
	if *page > 1 {
		state.SetPage(*page)
		res = state.Apply(drivers)
	}

	w := newTab()
	fmt.Fprintln(w, "NOMBRE\tLICENCIA\tTELÉFONO\tEMAIL\tESTADO\tID")
	for _, d := range res.Items {
		estado := "Inactivo"
		if d.Activo {
			estado = "Activo"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Nombre, d.Licencia, strOrDash(d.Telefono), strOrDash(d.Email), estado, d.ID)
	}
	w.Flush()
	printPageFooter(state.Page(), view.PageSize, len(res.Items), res.Total, res.TotalPages)
	return nil
}

func driversActive(ctx context.Context, st *store.DriverStore) error {
	if err := st.FetchActive(ctx); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al cargar los motoristas activos"))
	}
	w := newTab()
	fmt.Fprintln(w, "NOMBRE\tLICENCIA\tID")
	for _, d := range st.ActiveDrivers() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Nombre, d.Licencia, d.ID)
	}
	w.Flush()
	return nil
}

func driversCreate(ctx context.Context, st *store.DriverStore, args []string) error {
	fs := flag.NewFlagSet("drivers create", flag.ExitOnError)
	nombre := fs.String("nombre", "", "nombre del motorista")
	licencia := fs.String("licencia", "", "número de licencia")
	telefono := fs.String("telefono", "", "teléfono (opcional)")
	email := fs.String("email", "", "email (opcional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := dto.DriverForm{Nombre: *nombre, Licencia: *licencia, Telefono: *telefono, Email: *email}
	req := form.CreatePayload()
	if err := dto.Validate(req); err != nil {
		return validationErr(err)
	}

	created, err := st.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al crear el motorista"))
	}
	fmt.Printf("Motorista creado exitosamente: %s (%s)\n", created.Nombre, created.ID)
	return nil
}

func driversUpdate(ctx context.Context, st *store.DriverStore, args []string) error {
	fs := flag.NewFlagSet("drivers update", flag.ExitOnError)
	rawID := fs.String("id", "", "id del motorista")
	nombre := fs.String("nombre", "", "nombre del motorista")
	licencia := fs.String("licencia", "", "número de licencia")
	telefono := fs.String("telefono", "", "teléfono")
	email := fs.String("email", "", "email")
	activo := fs.String("activo", "", "estado: true o false")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	form := dto.DriverForm{Nombre: *nombre, Licencia: *licencia, Telefono: *telefono, Email: *email}
	if *activo != "" {
		b, err := strconv.ParseBool(*activo)
		if err != nil {
			return fmt.Errorf("valor inválido para -activo: %q", *activo)
		}
		form.Activo = &b
	}
	req := form.UpdatePayload()
	if err := dto.Validate(req); err != nil {
		return validationErr(err)
	}

	updated, err := st.Update(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al actualizar el motorista"))
	}
	fmt.Printf("Motorista actualizado exitosamente: %s\n", updated.Nombre)
	return nil
}

func driversDelete(ctx context.Context, st *store.DriverStore, args []string) error {
	fs := flag.NewFlagSet("drivers delete", flag.ExitOnError)
	rawID := fs.String("id", "", "id del motorista")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", api.Message(err, "Error al eliminar el motorista"))
	}
	fmt.Println("Motorista eliminado exitosamente")
	return nil
}
