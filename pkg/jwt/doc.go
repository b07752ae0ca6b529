// Package jwt provides JSON Web Token utilities for the VolunteerHub API.
//
// Tokens are signed with RS256. The service loads PEM-encoded RSA keys from
// disk; a private key enables both signing and validation, a public key alone
// is enough for validation-only deployments.
//
// # Signing
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/jwt.pem",
//	    Issuer:         "api.volunteerhub.dev",
//	    ExpirationMins: 15,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject: userID,
//	    UserID:  userID,
//	    Email:   email,
//	    Role:    role,
//	})
//
// # Validation
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // invalid, expired, or wrong issuer
//	}
//	userID := claims.UserID
package jwt
