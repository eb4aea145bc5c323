package listing

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

const maxDescricaoLen = 2000

var phoneRe = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)

// ValidatePhone checks the (XX) XXXXX-XXXX contact format. After stripping
// punctuation nothing but digits may remain.
func ValidatePhone(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if !phoneRe.MatchString(trimmed) {
		return fmt.Errorf("telefone deve estar no formato (XX) XXXXX-XXXX")
	}
	stripped := strings.NewReplacer("(", "", ")", "", "-", "", " ", "").Replace(trimmed)
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return fmt.Errorf("telefone deve conter apenas dígitos")
		}
	}
	return nil
}

// ValidatePrice rejects non-positive prices.
func ValidatePrice(preco decimal.Decimal) error {
	if preco.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("preço deve ser maior que zero")
	}
	return nil
}

// ValidateInput applies every field rule and collects field-scoped messages.
func ValidateInput(input *ListingInput) map[string]string {
	fields := map[string]string{}

	descricao := strings.TrimSpace(input.Descricao)
	if descricao == "" {
		fields["descricao"] = "descrição é obrigatória"
	} else if utf8.RuneCountInString(descricao) > maxDescricaoLen {
		fields["descricao"] = fmt.Sprintf("descrição não pode exceder %d caracteres", maxDescricaoLen)
	}

	preco, err := decimal.NewFromString(strings.TrimSpace(input.Preco))
	if err != nil {
		fields["preco"] = "preço inválido"
	} else if err := ValidatePrice(preco); err != nil {
		fields["preco"] = err.Error()
	}

	if input.TelefoneContato != nil && strings.TrimSpace(*input.TelefoneContato) != "" {
		if err := ValidatePhone(*input.TelefoneContato); err != nil {
			fields["telefone_contato"] = err.Error()
		}
	}

	if input.Status != nil && !enums.ListingStatus(*input.Status).IsValid() {
		fields["status"] = "status inválido"
	}

	return fields
}
