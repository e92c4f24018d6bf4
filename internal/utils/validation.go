package utils

import (
	"errors"
	"regexp"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ ]+$`)
)

// ValidateName accepts letters (including Spanish accents) and spaces only.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("el nombre es obligatorio")
	}
	if !namePattern.MatchString(name) {
		return errors.New("el nombre solo puede contener letras y espacios")
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("el correo es obligatorio")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("el formato del correo no es valido")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("la contrasena debe tener al menos 8 caracteres")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("la contrasena debe combinar letras y numeros")
	}
	return nil
}

func ValidateAge(age int) error {
	if age < 1 || age > 120 {
		return errors.New("la edad debe estar entre 1 y 120")
	}
	return nil
}

func ValidateWeight(weightKg float64) error {
	if weightKg < 10 || weightKg > 400 {
		return errors.New("el peso debe estar entre 10 y 400 kg")
	}
	return nil
}

func ValidateHeight(heightCm float64) error {
	if heightCm < 50 || heightCm > 250 {
		return errors.New("la talla debe estar entre 50 y 250 cm")
	}
	return nil
}

// ValidateRegistration runs the field checks in order and stops at the first
// failure, so the caller gets exactly one specific message.
func ValidateRegistration(name, email, password string, age int, weightKg, heightCm float64) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := ValidateAge(age); err != nil {
		return err
	}
	if err := ValidateWeight(weightKg); err != nil {
		return err
	}
	return ValidateHeight(heightCm)
}
