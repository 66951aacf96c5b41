package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ayşe":          "ayse",
		"Çağrı Öztürk":  "cagriozturk",
		"İLKNUR":        "ilknur",
		"Mehmet-Ali 2":  "mehmetali2",
		"":              "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Slugify(in))
		})
	}
}

func TestCustomerUsernameAndLoginEmail(t *testing.T) {
	u := CustomerUsername("Ayşe", "Burak")
	assert.Equal(t, "ayseburak", u)
	assert.Equal(t, "ayseburak@fotopanel.com", LoginEmail(u, "fotopanel.com"))
	assert.Equal(t, "ayseburak", UsernameFromEmail("ayseburak@fotopanel.com"))
}
