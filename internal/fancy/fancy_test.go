package fancy_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atlanticdynamic/fixtureapp/internal/fancy"
)

type FancyTestSuite struct {
	suite.Suite
}

func (s *FancyTestSuite) TestStylesRender() {
	sample := "Test Text"
	for _, style := range []interface{ Render(...string) string }{
		fancy.RootStyle,
		fancy.HeaderStyle,
		fancy.InfoStyle,
		fancy.BranchStyle,
		fancy.ValueStyle,
		fancy.AppStyle,
	} {
		s.Contains(style.Render(sample), sample)
	}
}

func (s *FancyTestSuite) TestTree() {
	t := fancy.Tree()
	s.Require().NotNil(t)
	t.Root("root")
	t.Child("first")
	t.Child("second")

	out := t.String()
	s.Contains(out, "root")
	s.Contains(out, "first")
	s.Contains(out, "second")
}

func (s *FancyTestSuite) TestBranchNode() {
	withNote := fancy.BranchNode("Logging", "(stdout)")
	s.Contains(withNote.String(), "Logging")
	s.Contains(withNote.String(), "(stdout)")

	plain := fancy.BranchNode("HTTP", "")
	s.Contains(plain.String(), "HTTP")
}

func (s *FancyTestSuite) TestKeyValue() {
	out := fancy.KeyValue("Port", "8080")
	s.Contains(out, "Port: ")
	s.Contains(out, "8080")
}

func TestFancySuite(t *testing.T) {
	suite.Run(t, new(FancyTestSuite))
}
