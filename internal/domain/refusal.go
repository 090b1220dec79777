package domain

import (
	"sort"
	"strings"

	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/money"
)

var RefusalReasons = map[string]string{
	"Desemprego":            "O cliente está desempregado, portanto não pode negociar.",
	"Doença":                "O cliente está doente, portanto não pode negociar.",
	"Terceiro vai negociar": "O cliente não quer negociar, pois informa que um terceiro irá negociar.",
	"Nega-se a ouvir":       "O cliente não quis ouvir as propostas.",
	"Nega-se a pagar":       "O cliente nega-se a pagar o débito.",
	"Fora de prazo":         "O cliente pretende realizar o pagamento, porém o prazo não viabiliza uma negociação.",
}

func RefusalReasonNames() []string {
	names := make([]string, 0, len(RefusalReasons))
	for name := range RefusalReasons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RefusalText lists every proposal offered, one per line, followed by the
// sentence of reason when it is a known refusal reason.
func RefusalText(proposals []Proposal, reason string, f money.Formatter) (string, error) {
	if len(proposals) == 0 {
		return "", customError.NewValidationError("proposals",
			"Preencha pelo menos uma proposta para copiar o texto de recusa.")
	}

	lines := make([]string, 0, len(proposals)+1)
	for _, p := range proposals {
		lines = append(lines, p.FormattedWithDueDate(f))
	}
	if sentence, ok := RefusalReasons[reason]; ok {
		lines = append(lines, sentence)
	}

	return strings.Join(lines, "\n"), nil
}
