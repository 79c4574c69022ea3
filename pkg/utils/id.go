package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRef gera um código curto legível, usado como referência de recibo
func GenerateRef() (string, error) {
	return gonanoid.Generate(characters, 10)
}
