/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/crypt"
	"github.com/valpere/simpletran/internal/store"
	"github.com/valpere/simpletran/internal/translator"
	"github.com/valpere/simpletran/internal/translator/chatgpt"
	"github.com/valpere/simpletran/internal/translator/deepl"
	"github.com/valpere/simpletran/internal/translator/google"
)

// app is everything a command needs to translate or edit settings.
type app struct {
	provider   *config.Provider
	registry   *translator.Registry
	dispatcher *translator.Dispatcher
	db         *store.Store
	box        *crypt.Box
}

func openApp() (*app, error) {
	a := &app{}

	box, err := loadBox()
	if err != nil {
		return nil, err
	}
	a.box = box

	var stores config.Chain
	if path := v.GetString("db"); path != "" {
		db, err := store.New(path)
		if err != nil {
			return nil, err
		}
		a.db = db
		stores = append(stores, db)
	}
	stores = append(stores, config.NewViperStore(v))

	var dec config.Decryptor
	if box != nil {
		dec = box
	}
	a.provider = config.NewProvider(stores, dec)
	a.registry = buildRegistry(a.provider)
	a.dispatcher = translator.NewDispatcher(a.provider, a.registry)
	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// buildRegistry registers every engine against one provider.
func buildRegistry(p *config.Provider) *translator.Registry {
	httpClient := resty.New()
	return translator.NewRegistry(
		deepl.New(p, httpClient, logger.Named(deepl.Name)),
		chatgpt.New(p, httpClient, logger.Named(chatgpt.Name)),
		google.New(p, logger.Named(google.Name)),
	)
}

// loadBox returns nil when no crypt.key is configured.
func loadBox() (*crypt.Box, error) {
	raw := v.GetString("crypt.key")
	if raw == "" {
		return nil, nil
	}
	key, err := crypt.ParseKey(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid crypt.key: %w", err)
	}
	return crypt.New(key)
}

func requireDB(a *app) error {
	if a.db == nil {
		return fmt.Errorf("--db (or SIMPLETRAN_DB) is required")
	}
	return nil
}
