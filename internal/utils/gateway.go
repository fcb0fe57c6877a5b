package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashGatewayKey 生成网关密钥的 bcrypt 哈希（部署时写入 GATEWAY_KEY_HASH）
func HashGatewayKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckGatewayKey 校验建立会话时携带的网关密钥
func CheckGatewayKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
