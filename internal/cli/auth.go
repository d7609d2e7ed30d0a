package cli

import (
	"context"
	"log"
	"os"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/syncer"
)

// Authorize runs the installed-app OAuth flow: the user opens the printed
// consent URL in a browser and pastes the one-time code back.
func (a *App) Authorize(ctx context.Context) error {
	clientID, err := GetSimpleText(a.reader, "- OAuth client id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	clientSecret, err := GetSecret("- OAuth client secret", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Open this URL in a browser and authorize the app:")
	printlnFn(a.provider.AuthURL(clientID, a.config.OAuthRedirectURI))

	code, err := GetSimpleText(a.reader, "- Paste the authorization code", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	tokens, err := a.provider.ExchangeCode(ctx, clientID, clientSecret, code, a.config.OAuthRedirectURI)
	if err != nil {
		log.Printf("authorization failed: %v", err)
		return err
	}

	err = a.settings.SetCredentials(ctx, syncer.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Cloud account connected")
	return nil
}
