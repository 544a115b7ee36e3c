package rules

import (
	"github.com/donaldgifford/carrylint/internal/rules/carrying"
	"github.com/donaldgifford/carrylint/internal/rules/ternary"
)

func init() {
	Register(&carrying.Rule{})
	Register(&ternary.Rule{})
}
