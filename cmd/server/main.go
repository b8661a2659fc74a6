package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"stend/internal/config"
	"stend/internal/mockserver"
	"stend/internal/pg"
	"stend/internal/reference"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to config JSON")
	rolesDir := flag.String("roles", "", "Path to role catalog directory (YAML); built-in catalog if empty")
	dbURL := flag.String("db", "", "Postgres URL (empty = in-memory only)")
	flag.Parse()

	cfg := config.LoadWithPath(*configPath)

	// 1. Справочник ролей: из yaml-папки или встроенный
	roles := reference.DefaultCatalog()
	if *rolesDir != "" {
		catalog, err := reference.LoadRoleCatalog(*rolesDir)
		if err != nil {
			log.Fatalf("Ошибка загрузки справочника ролей: %v", err)
		}
		if r, ok := catalog["roles"]; ok {
			roles = r
		}
	}
	fmt.Printf("Ролей в справочнике: %d\n", len(roles.Items))

	// 2. Хранилище мок-сервера
	storage := mockserver.NewStorage(roles)

	// 3. Опциональное Postgres-зеркало
	if *dbURL != "" {
		db, err := pg.Open(*dbURL)
		if err != nil {
			log.Fatalf("Ошибка подключения к Postgres: %v", err)
		}
		store := pg.NewStore(db)
		ctx := context.Background()
		cols := []string{mockserver.ColProjects, mockserver.ColBuildTypes, mockserver.ColUsers}
		if err := store.EnsureSchema(ctx, cols); err != nil {
			log.Fatalf("Ошибка миграции схемы: %v", err)
		}
		if err := storage.AttachPersistence(ctx, store); err != nil {
			log.Fatalf("Ошибка загрузки данных из Postgres: %v", err)
		}
		fmt.Println("Postgres-зеркало подключено")
	}

	// 4. Запускаем REST API мок-сервера
	fmt.Printf("Стартуем мок-сервер на :%s...\n", cfg.Port)
	if err := mockserver.RunServer(":"+cfg.Port, storage, cfg.SuperUserToken); err != nil {
		log.Fatalf("Сервер остановился с ошибкой: %v", err)
	}
}
