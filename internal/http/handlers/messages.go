package handlers

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"ngoserver/internal/middleware"
)

const (
	msgProjectNotFound     = "project not found"
	msgOpportunityNotFound = "opportunity not found"
	msgInvalidAmount       = "invalid amount"
	msgInvalidPayload      = "invalid payload"
	msgPayloadTooLarge     = "payload too large"
	msgInternal            = "internal error"
)

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Portuguese))
	entries := map[string][2]string{
		msgProjectNotFound:     {"Projeto não encontrado", "Project not found"},
		msgOpportunityNotFound: {"Oportunidade não encontrada", "Opportunity not found"},
		msgInvalidAmount:       {"Valor inválido", "Invalid amount"},
		msgInvalidPayload:      {"Requisição inválida", "Invalid request body"},
		msgPayloadTooLarge:     {"Requisição muito grande", "Request body too large"},
		msgInternal:            {"Erro interno", "Internal error"},
	}
	for key, text := range entries {
		_ = b.SetString(language.Portuguese, key, text[0])
		_ = b.SetString(language.English, key, text[1])
	}
	return b
}

func localeTag(locale string) language.Tag {
	if locale == "en" {
		return language.English
	}
	return language.Portuguese
}

func printerFor(ctx context.Context) *message.Printer {
	return message.NewPrinter(localeTag(middleware.LocaleFromContext(ctx)), message.Catalog(messages))
}

func localize(ctx context.Context, key string) string {
	return printerFor(ctx).Sprintf(key)
}
