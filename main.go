package main

import "catalog-ingest/cmd"

func main() {
	cmd.Execute()
}
