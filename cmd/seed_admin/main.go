// seed_admin aprovisiona la cuenta administradora inicial contra la base de
// datos configurada. Solo los administradores pueden gestionar el catálogo y
// listar cuentas, así que este comando se corre una vez al desplegar.
//
// Uso: go run ./cmd/seed_admin -email admin@tienda.co -password <clave> [-name "Admin"]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tu-usuario/comercio-pro/internal/application/provisioning"
	"github.com/tu-usuario/comercio-pro/internal/domain"
	"github.com/tu-usuario/comercio-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/comercio-pro/pkg/config"
)

func main() {
	email := flag.String("email", "", "email de la cuenta admin")
	password := flag.String("password", "", "password de la cuenta admin (mínimo 8 caracteres)")
	name := flag.String("name", "Administrador", "nombre visible de la cuenta")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: seed_admin -email <email> -password <clave> [-name <nombre>]")
		os.Exit(1)
	}
	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "password debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := provisioning.NewUseCase(postgres.NewTxRunner(pool), cfg.Auth.BcryptCost)
	admin, err := uc.ProvisionAdmin(ctx, *email, *password, *name)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Fprintf(os.Stderr, "la cuenta %s ya existe\n", *email)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "aprovisionar admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cuenta admin creada: %s (%s)\n", admin.Email, admin.ID)
}
