// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package scrubber_test

import (
	// stdlib
	"errors"
	"iter"
	"regexp"
	"testing"

	// 3p
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	// project
	"github.com/DataDog/pii-scrubber/internal/detectors"
	detectormocks "github.com/DataDog/pii-scrubber/internal/detectors/mocks"
	"github.com/DataDog/pii-scrubber/internal/filth"
	"github.com/DataDog/pii-scrubber/internal/postprocessors"
	postprocessormocks "github.com/DataDog/pii-scrubber/internal/postprocessors/mocks"
	"github.com/DataDog/pii-scrubber/internal/scrubber"
)

func literalDetector(name string, filthType string, literal string) detectors.Detector {
	return detectors.NewRegexDetector(name, filthType, regexp.MustCompile(regexp.QuoteMeta(literal)))
}

func yielding(filths []*filth.Filth, err error) iter.Seq2[*filth.Filth, error] {
	return func(yield func(*filth.Filth, error) bool) {
		for _, f := range filths {
			if !yield(f, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}

func newMockDetector(ctrl *gomock.Controller, name string, seq iter.Seq2[*filth.Filth, error]) *detectormocks.MockDetector {
	detector := detectormocks.NewMockDetector(ctrl)
	detector.EXPECT().Name().Return(name).AnyTimes()
	detector.EXPECT().IterateFilth(gomock.Any(), gomock.Any()).Return(seq).AnyTimes()
	return detector
}

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("text is unchanged without detectors", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		text := "contact me at joe@example.com or 555-1234"

		// WHEN
		cleaned, err := s.Clean(text)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, text, cleaned)
	})

	t.Run("replaces an email with its placeholder", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email))
		require.NoError(t, err)

		// WHEN
		cleaned, err := s.Clean("contact me at joe@example.com")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "contact me at {{EMAIL}}", cleaned)
	})

	t.Run("cleaning cleaned text changes nothing", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New()
		require.NoError(t, err)

		// WHEN
		once, err := s.Clean("contact joe@example.com or call 555-1234, see https://example.com")
		require.NoError(t, err)
		twice, err := s.Clean(once)
		require.NoError(t, err)

		// THEN
		assert.Equal(t, "contact {{EMAIL}} or call {{PHONE}}, see {{URL}}", once)
		assert.Equal(t, once, twice)
	})

	t.Run("counts the replaced filth by type", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email, filth.Phone))
		require.NoError(t, err)

		// WHEN
		cleaned, counts, err := s.CleanAndCount("a@b.com c@d.com 555-1234")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "{{EMAIL}} {{EMAIL}} {{PHONE}}", cleaned)
		assert.Equal(t, map[string]int64{filth.Email: 2, filth.Phone: 1}, counts)
	})

	t.Run("documents without filth are returned unchanged", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Phone))
		require.NoError(t, err)

		// WHEN
		cleaned, err := s.CleanDocuments(map[string]string{"a.txt": "call 555-1234", "b.txt": "no pii here"})

		// THEN
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a.txt": "call {{PHONE}}", "b.txt": "no pii here"}, cleaned)
	})

	t.Run("document lists keep their order", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email))
		require.NoError(t, err)

		// WHEN
		cleaned, err := s.CleanDocumentList([]string{"a@b.com", "nothing", "x c@d.com"})

		// THEN
		require.NoError(t, err)
		assert.Equal(t, []string{"{{EMAIL}}", "nothing", "x {{EMAIL}}"}, cleaned)
	})

	t.Run("invalid candidates are not replaced", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.CreditCard))
		require.NoError(t, err)

		// WHEN
		cleaned, err := s.Clean("4111 1111 1111 1111 and 4111 1111 1111 1112")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "{{CREDIT_CARD}} and 4111 1111 1111 1112", cleaned)
	})

	t.Run("running ids are shared by the same text", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email), scrubber.WithoutAutoload())
		require.NoError(t, err)
		config := postprocessors.DefaultFilthReplacerConfig()
		config.IncludeCount = true
		require.NoError(t, s.AddPostProcessor(postprocessors.NewFilthReplacer(config)))
		require.NoError(t, s.AddPostProcessor(postprocessors.NewPrefixSuffixReplacer("{{", "}}")))

		// WHEN
		cleaned, err := s.Clean("a@b.com ... A@b.com ... c@d.com")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "{{EMAIL_0}} ... {{EMAIL_0}} ... {{EMAIL_1}}", cleaned)
	})

	t.Run("filth can be removed", func(t *testing.T) {
		t.Parallel()
		cleaned, err := scrubber.Clean("mail a@b.com now", scrubber.WithDetectors(filth.Email), scrubber.WithPostProcessors(postprocessors.FilthRemoverName))
		require.NoError(t, err)
		assert.Equal(t, "mail  now", cleaned)
	})

	t.Run("known filth is found in batches", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithoutAutoload(), scrubber.WithPostProcessors(postprocessors.PrefixSuffixReplacerName))
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(detectors.NewKnownFilthDetector([]detectors.KnownFilth{
			{Match: "Alice", Type: "name"},
		}, "")))

		// WHEN
		cleaned, err := scrubber.CleanDocuments(map[string]string{"a": "hi Alice", "b": "bye Alice"})
		require.NoError(t, err)
		batch, err := s.CleanDocuments(map[string]string{"a": "hi Alice", "b": "bye Alice"})

		// THEN
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "hi Alice", "b": "bye Alice"}, cleaned)
		assert.Equal(t, map[string]string{"a": "hi {{KNOWN}}", "b": "bye {{KNOWN}}"}, batch)
	})
}

func TestIterateFilth(t *testing.T) {
	t.Parallel()

	t.Run("detectors matching the same text are merged", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(literalDetector("email_local", filth.Email, "john.doe")))
		require.NoError(t, s.AddDetector(literalDetector("skype_name", filth.Skype, "john.doe")))

		// WHEN
		found, err := s.IterateFilth("user john.doe here", false)

		// THEN
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.True(t, found[0].IsMerged())
		assert.Len(t, found[0].Filths(), 2)
		assert.Equal(t, "{{EMAIL+SKYPE}}", found[0].Replacement())
	})

	t.Run("the same detector under two names gives one constituent each", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(detectors.NewEmailDetector(detectors.WithName("email_a"))))
		require.NoError(t, s.AddDetector(detectors.NewEmailDetector(detectors.WithName("email_b"))))

		// WHEN
		found, err := s.IterateFilth("joe@example.com", false)

		// THEN
		require.NoError(t, err)
		require.Len(t, found, 1)
		var names []string
		for _, constituent := range found[0].Filths() {
			names = append(names, constituent.DetectorName)
		}
		assert.Equal(t, []string{"email_a", "email_b"}, names)
	})

	t.Run("chained overlaps collapse into one filth", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(literalDetector("c", "c", "ghi")))
		require.NoError(t, s.AddDetector(literalDetector("a", "a", "abcd")))
		require.NoError(t, s.AddDetector(literalDetector("b", "b", "defg")))

		// WHEN
		found, err := s.IterateFilth("abcdefghi", false)

		// THEN
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, 0, found[0].Beg)
		assert.Equal(t, 9, found[0].End)
		assert.Equal(t, "abcdefghi", found[0].Text)
		assert.Len(t, found[0].Filths(), 3)
		assert.Equal(t, "A+B+C", found[0].Placeholder())
	})

	t.Run("filth are sorted and never overlap", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email, filth.URL, filth.Phone, filth.Twitter))
		require.NoError(t, err)
		docs := scrubber.DocumentMap(map[string]string{
			"b": "mail a@b.com, @someone, https://x.io/joe@example.com 555-1234",
			"a": "555-1234 a@b.com",
		})

		// WHEN
		found, err := s.IterateFilthDocuments(docs, true)

		// THEN
		require.NoError(t, err)
		require.NotEmpty(t, found)
		for i := 1; i < len(found); i++ {
			prev, next := found[i-1], found[i]
			if prev.DocumentName == next.DocumentName {
				assert.Less(t, prev.End, next.Beg)
			} else {
				assert.Less(t, prev.DocumentName, next.DocumentName)
			}
		}
		for _, f := range found {
			text := docs[0].Text
			if f.DocumentName == "b" {
				text = docs[1].Text
			}
			assert.Equal(t, text[f.Beg:f.End], f.Text)
		}
	})

	t.Run("a single text is the unnamed document", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email))
		require.NoError(t, err)

		// WHEN
		single, err := s.IterateFilth("a@b.com", true)
		require.NoError(t, err)
		list, err := s.IterateFilthDocuments(scrubber.DocumentList([]string{"a@b.com"}), true)
		require.NoError(t, err)

		// THEN
		require.Len(t, single, 1)
		require.Len(t, list, 1)
		assert.Equal(t, "", single[0].DocumentName)
		assert.Equal(t, "0", list[0].DocumentName)
	})

	t.Run("post-processors see the merged list once", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		ctrl := gomock.NewController(t)
		postProcessor := postprocessormocks.NewMockPostProcessor(ctrl)
		postProcessor.EXPECT().Name().Return("mock").AnyTimes()
		postProcessor.EXPECT().ProcessFilth(gomock.Any()).DoAndReturn(func(filths []*filth.Filth) ([]*filth.Filth, error) {
			assert.Len(t, filths, 2)
			return filths, nil
		}).Times(1)
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email), scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddPostProcessor(postProcessor))

		// WHEN
		_, err = s.IterateFilth("a@b.com c@d.com", true)

		// THEN
		require.NoError(t, err)
	})

	t.Run("post-processors are skipped when not requested", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		ctrl := gomock.NewController(t)
		postProcessor := postprocessormocks.NewMockPostProcessor(ctrl)
		postProcessor.EXPECT().Name().Return("mock").AnyTimes()
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email), scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddPostProcessor(postProcessor))

		// WHEN
		found, err := s.IterateFilth("a@b.com", false)

		// THEN
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Nil(t, found[0].ReplacementString)
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("detector errors propagate with the detector name", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		ctrl := gomock.NewController(t)
		errBoom := errors.New("boom")
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(newMockDetector(ctrl, "broken", yielding(nil, errBoom))))

		// WHEN
		_, err = s.Clean("text")

		// THEN
		assert.ErrorIs(t, err, errBoom)
		assert.ErrorContains(t, err, "detector broken")
	})

	t.Run("filth outside of the document is rejected", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		ctrl := gomock.NewController(t)
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(newMockDetector(ctrl, "liar", yielding([]*filth.Filth{
			{Beg: 2, End: 40, Text: "xt", Type: filth.Email},
		}, nil))))

		// WHEN
		_, err = s.Clean("text")

		// THEN
		assert.ErrorIs(t, err, scrubber.ErrInvalidFilth)
	})

	t.Run("documents sharing a name are rejected", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email))
		require.NoError(t, err)
		docs := scrubber.Documents{
			{Name: "a.txt", Text: "mail a@b.com"},
			{Name: "a.txt", Text: "x"},
		}

		// WHEN
		_, err = s.IterateFilthDocuments(docs, true)

		// THEN
		assert.ErrorIs(t, err, scrubber.ErrDuplicateDocument)
		assert.ErrorContains(t, err, `"a.txt"`)
		assert.NotErrorIs(t, err, scrubber.ErrInvalidFilth)
	})

	t.Run("filth without a type is rejected", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		ctrl := gomock.NewController(t)
		s, err := scrubber.New(scrubber.WithoutAutoload())
		require.NoError(t, err)
		require.NoError(t, s.AddDetector(newMockDetector(ctrl, "untyped", yielding([]*filth.Filth{
			{Beg: 0, End: 2, Text: "te"},
		}, nil))))

		// WHEN
		_, err = s.IterateFilth("text", false)

		// THEN
		assert.ErrorIs(t, err, scrubber.ErrInvalidFilth)
	})

	t.Run("names must be unique and registered", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New(scrubber.WithDetectors(filth.Email))
		require.NoError(t, err)

		// THEN
		assert.ErrorIs(t, s.AddDetector(detectors.NewEmailDetector()), scrubber.ErrDuplicateName)
		assert.ErrorIs(t, s.AddDetectorByName(filth.Email), scrubber.ErrDuplicateName)
		assert.ErrorIs(t, s.AddDetectorByName("nope"), scrubber.ErrNotRegistered)
		assert.ErrorIs(t, s.AddDetectorByName("nope"), detectors.ErrNotRegistered)
		assert.ErrorIs(t, s.RemoveDetector("nope"), scrubber.ErrNotRegistered)
		assert.ErrorIs(t, s.AddDetector(nil), scrubber.ErrNilDetector)
		assert.ErrorIs(t, s.AddPostProcessor(nil), scrubber.ErrNilPostProcessor)
		assert.ErrorIs(t, s.AddPostProcessorByName(postprocessors.FilthReplacerName), scrubber.ErrDuplicateName)
		assert.ErrorIs(t, s.AddPostProcessorByName("nope"), postprocessors.ErrNotRegistered)
		assert.ErrorIs(t, s.RemovePostProcessor("nope"), scrubber.ErrNotRegistered)
	})

	t.Run("unknown detectors fail construction", func(t *testing.T) {
		t.Parallel()
		_, err := scrubber.New(scrubber.WithDetectors("nope"))
		assert.ErrorIs(t, err, scrubber.ErrNotRegistered)
	})
}

func TestConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("autoload only loads detectors supporting the locale", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		us, err := scrubber.New()
		require.NoError(t, err)
		gb, err := scrubber.New(scrubber.WithLocale("en_GB"))
		require.NoError(t, err)

		// THEN
		assert.Contains(t, us.Detectors(), filth.SocialSecurityNumber)
		assert.NotContains(t, us.Detectors(), filth.PostalCode)
		assert.NotContains(t, us.Detectors(), filth.Skype)
		assert.Contains(t, gb.Detectors(), filth.PostalCode)
		assert.NotContains(t, gb.Detectors(), filth.SocialSecurityNumber)
		assert.Equal(t, []string{postprocessors.FilthReplacerName, postprocessors.PrefixSuffixReplacerName}, us.PostProcessors())
	})

	t.Run("unsupported locales only warn", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		logger, hook := logtest.NewNullLogger()
		s, err := scrubber.New(scrubber.WithLocale("en_US"), scrubber.WithLogger(log.NewEntry(logger)), scrubber.WithoutAutoload())
		require.NoError(t, err)

		// WHEN
		err = s.AddDetectorByName(filth.PostalCode)

		// THEN
		require.NoError(t, err)
		assert.Contains(t, s.Detectors(), filth.PostalCode)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("post-processors can be inserted anywhere", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		s, err := scrubber.New()
		require.NoError(t, err)

		// WHEN
		require.NoError(t, s.InsertPostProcessor(0, postprocessors.NewTypeReplacer(nil)))
		require.NoError(t, s.InsertPostProcessor(100, postprocessors.NewFilthRemover()))
		require.NoError(t, s.RemovePostProcessor(postprocessors.FilthReplacerName))

		// THEN
		assert.Equal(t, []string{
			postprocessors.TypeReplacerName,
			postprocessors.PrefixSuffixReplacerName,
			postprocessors.FilthRemoverName,
		}, s.PostProcessors())
	})

	t.Run("registries are read when the scrubber is built", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		registry := detectors.NewRegistry()
		s, err := scrubber.New(scrubber.WithDetectorRegistry(registry))
		require.NoError(t, err)

		// WHEN
		require.NoError(t, registry.Register(detectors.New("late", func(string) (detectors.Detector, error) {
			return detectors.NewEmailDetector(detectors.WithName("late")), nil
		}, true)))

		// THEN
		assert.Empty(t, s.Detectors())
		assert.ErrorIs(t, s.AddDetectorByName("late"), scrubber.ErrNotRegistered)
	})

	t.Run("list filth uses the options", func(t *testing.T) {
		t.Parallel()
		found, err := scrubber.ListFilthDocuments(map[string]string{"a": "x@y.com"}, scrubber.WithDetectors(filth.Email))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "{{EMAIL}}", found[0].Replacement())

		found, err = scrubber.ListFilth("x@y.com", scrubber.WithoutAutoload())
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
