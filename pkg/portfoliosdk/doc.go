/*
Package portfoliosdk is a Go client for the portfolio contact API and the
home of its wire types, which the server encodes directly.

	client := portfoliosdk.NewClient("http://localhost:5000")

	// Public contact form
	resp, err := client.SubmitContact(ctx, portfoliosdk.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello!",
	})

	// Admin console
	if _, err := client.Login(ctx, "admin", password); err != nil {
		return err
	}
	contacts, err := client.ListContacts(ctx)
	_, err = client.DeleteContact(ctx, contacts[0].ID)

Login stores the session token on the Client; later admin calls send it as
a bearer token. Non-2xx responses are returned as *APIError carrying the
status code and the server's error message.

A Client is safe for concurrent use.
*/
package portfoliosdk
