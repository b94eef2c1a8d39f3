// cmd/server is the plain server entrypoint, for deployments that don't
// want the full CLI.
package main

import (
	"log"

	"github.com/shashiranjanraj/meera/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
