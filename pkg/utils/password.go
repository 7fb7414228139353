package utils

import "golang.org/x/crypto/bcrypt"

// 成本因子 12，抗离线爆破
const bcryptCost = 12

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
