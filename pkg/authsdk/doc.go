/*
Package authsdk provides a client SDK for the tenancy identity service.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: public endpoints (health, registration, login)
  - Session: endpoints that need a bearer token

Create an SDKClient and authenticate to obtain a Session:

	client := authsdk.NewSDKClient("http://localhost:3000")

	session, err := client.Register(ctx, authsdk.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct horse",
	})

	// or, for an existing account
	session, err = client.Login(ctx, "ada@example.com", "correct horse")

A Session carries the access token and the profile it was issued for:

	orgs, err := session.ListOrganisations(ctx)
	org, err := session.CreateOrganisation(ctx, authsdk.CreateOrganisationRequest{Name: "Analytical Engines"})
	err = session.AddUserToOrganisation(ctx, org.OrgID, otherUserID)

Tokens are not refreshed. Once the token expires every call fails with a 403
*APIError and the caller must log in again.

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status, the
envelope status and message, and for validation failures the rejected
fields:

	_, err := client.Register(ctx, req)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		for _, f := range apiErr.Errors {
			fmt.Println(f.Field, f.Message)
		}
	}
*/
package authsdk
