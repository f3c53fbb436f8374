package main

import (
	"gdpetl-backend/cmd/gdp-etl/commands"
	"gdpetl-backend/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()
	commands.ExecuteContext(ctx)
}
