package institutions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/obis"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/oceanexpert"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
)

func TestInstituteSync(t *testing.T) {
	is := is.New(t)

	catalog := testCatalog(domain.Group{ID: "grp-1", Name: "flanders-marine-institute"})
	progress := testProgress()
	out := &bytes.Buffer{}

	svc := NewInstituteSync(zerolog.Logger{}, testRegistry(), testDirectory(), catalog, progress, out, Options{})
	summary, err := svc.Sync(context.Background())
	is.NoErr(err)

	is.Equal(summary.Total, 3)
	is.Equal(summary.Created, 1)
	is.Equal(summary.Updated, 1)
	is.Equal(summary.Skipped, 1)
	is.Equal(summary.Enriched, 1)
	is.Equal(summary.ExitCode(), 0)

	created := catalog.GroupCreateCalls()[0].Group
	is.Equal(created.Name, "marine-biological-association-of-the-uk")
	is.Equal(created.ImageURL, "https://oceanexpert.org/upload/logo/7857.png")

	updated := catalog.GroupUpdateCalls()[0].Group
	is.Equal(updated.ID, "grp-1")
	is.Equal(updated.Name, "flanders-marine-institute")

	is.Equal(len(progress.ClearProgressCalls()), 1)
	is.True(strings.Contains(out.String(), "could not fetch Ocean Expert data for id 5051"))
}

func TestThatEnrichmentFailuresDoNotStopTheSync(t *testing.T) {
	is := is.New(t)

	directory := &DirectoryMock{
		InstituteFunc: func(ctx context.Context, id string) (*oceanexpert.Record, error) {
			return nil, domain.FetchError{Registry: oceanexpert.RegistryName, StatusCode: 500}
		},
	}
	catalog := testCatalog()

	svc := NewInstituteSync(zerolog.Logger{}, testRegistry(), directory, catalog, nil, nil, Options{})
	summary, err := svc.Sync(context.Background())
	is.NoErr(err)

	is.Equal(summary.Enriched, 0)
	is.Equal(summary.Created, 2)

	group := catalog.GroupCreateCalls()[0].Group
	quality, _ := group.Extra("data_quality")
	is.Equal(quality, QualityOBISOnly)
}

func TestThatSyncResumesFromSavedProgress(t *testing.T) {
	is := is.New(t)

	progress := testProgress()
	progress.ProgressFunc = func(key string) (int, bool, error) {
		is.Equal(key, DefaultResumeKey)
		return 2, true, nil
	}
	catalog := testCatalog()

	svc := NewInstituteSync(zerolog.Logger{}, testRegistry(), testDirectory(), catalog, progress, nil, Options{})
	summary, err := svc.Sync(context.Background())
	is.NoErr(err)

	is.Equal(summary.Created, 0)
	is.Equal(summary.Skipped, 1) // only the last institute was processed
}

func TestThatCancellationSavesProgress(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	directory := testDirectory()
	directory.InstituteFunc = func(ctx context.Context, id string) (*oceanexpert.Record, error) {
		cancel()
		return nil, errors.New("unreachable")
	}
	progress := testProgress()

	svc := NewInstituteSync(zerolog.Logger{}, testRegistry(), directory, testCatalog(), progress, nil, Options{Delay: time.Minute})
	summary, err := svc.Sync(ctx)

	is.True(errors.Is(err, context.Canceled))
	is.True(summary.Interrupted)
	is.Equal(summary.ExitCode(), 1)

	saved := progress.SaveProgressCalls()
	is.Equal(len(saved), 1)
	is.Equal(saved[0].Index, 0) // the first institute was never written
	is.Equal(len(progress.ClearProgressCalls()), 0)
}

func TestThatACancelledCatalogWriteIsRedoneOnResume(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	catalog := testCatalog()
	catalog.GroupCreateFunc = func(ctx context.Context, group domain.Group) (*domain.Group, error) {
		cancel()
		return nil, ctx.Err()
	}
	progress := testProgress()

	svc := NewInstituteSync(zerolog.Logger{}, testRegistry(), testDirectory(), catalog, progress, nil, Options{})
	summary, err := svc.Sync(ctx)

	is.True(errors.Is(err, context.Canceled))
	is.True(summary.Interrupted)
	is.Equal(summary.Failed, 0) // cancellation is not a failure
	is.Equal(summary.Created, 0)

	saved := progress.SaveProgressCalls()
	is.Equal(len(saved), 1)
	is.Equal(saved[0].Index, 0)
}

func TestGroupFromInstitute(t *testing.T) {
	is := is.New(t)

	rec := &oceanexpert.Record{}
	is.NoErr(json.Unmarshal([]byte(mbaRecordJSON), rec))

	today := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	group, ok := GroupFromInstitute(testInstitutes()[0], rec, today)
	is.True(ok)

	is.Equal(group.Title, "Marine Biological Association of the UK")
	is.Equal(group.Type, "group")
	is.Equal(group.State, "active")
	is.Equal(group.Description, "Address: Citadel Hill, Plymouth, PL1 2PB, United Kingdom\nAcronym: MBA\nOcean Expert Members: 42")

	extra := func(key string) string {
		v, _ := group.Extra(key)
		return v
	}

	is.Equal(extra("ocean_expert_id"), "7857")
	is.Equal(extra("obis_institution_code"), "MBA")
	is.Equal(extra("edmo_code"), "1234")
	is.Equal(extra("website"), "https://www.mba.ac.uk")
	is.Equal(extra("country_code"), "GB")
	is.Equal(extra("ocean_expert_edmo_code"), "545")
	is.Equal(extra("data_source"), DataSource)
	is.Equal(extra("data_quality"), QualityOceanExpert)
	is.Equal(extra("sync_date"), "2024-03-01")

	_, hasFax := group.Extra("fax")
	is.True(!hasFax) // empty values are left out
}

func TestThatEnglishNamesAreUsedAsFallback(t *testing.T) {
	is := is.New(t)

	rec := &oceanexpert.Record{InstituteRaw: json.RawMessage(`{"instName": " ", "instNameEng": "Institute of Marine Research"}`)}

	group, ok := GroupFromInstitute(testInstitutes()[0], rec, time.Now())
	is.True(ok)
	is.Equal(group.Title, "Institute of Marine Research")

	quality, _ := group.Extra("data_quality")
	is.Equal(quality, QualityOceanExpertEnglish)
}

func TestThatRegistryOnlyGroupsDescribeTheCountry(t *testing.T) {
	is := is.New(t)

	group, ok := GroupFromInstitute(testInstitutes()[0], nil, time.Now())
	is.True(ok)
	is.Equal(group.Title, "Marine Biological Association")
	is.Equal(group.Description, "Country: United Kingdom")
}

func TestThatShortNamesAreSkipped(t *testing.T) {
	is := is.New(t)

	_, ok := GroupFromInstitute(testInstitutes()[2], nil, time.Now())
	is.True(!ok)
}

func testRegistry() *InstituteRegistryMock {
	return &InstituteRegistryMock{
		InstitutesWithOceanExpertIDFunc: func(ctx context.Context) ([]obis.Institute, int, error) {
			return testInstitutes(), 5, nil
		},
	}
}

func testInstitutes() []obis.Institute {
	return []obis.Institute{
		{IDRaw: json.RawMessage(`7857`), Name: "Marine Biological Association", Code: "MBA", EDMOCodeRaw: json.RawMessage(`1234`), Country: "United Kingdom"},
		{IDRaw: json.RawMessage(`5051`), Name: "Flanders Marine Institute", Code: "VLIZ"},
		{IDRaw: json.RawMessage(`17`), Name: "Ü."},
	}
}

func testDirectory() *DirectoryMock {
	return &DirectoryMock{
		InstituteFunc: func(ctx context.Context, id string) (*oceanexpert.Record, error) {
			if id == "7857" {
				rec := &oceanexpert.Record{}
				err := json.Unmarshal([]byte(mbaRecordJSON), rec)
				return rec, err
			}
			if id == "17" {
				return &oceanexpert.Record{}, nil
			}
			return nil, domain.FetchError{Registry: oceanexpert.RegistryName, StatusCode: 404, Err: errors.New("request failed")}
		},
	}
}

func testCatalog(existing ...domain.Group) *CatalogMock {
	return &CatalogMock{
		GroupListFunc: func(ctx context.Context) ([]string, error) {
			names := []string{}
			for _, g := range existing {
				names = append(names, g.Name)
			}
			return names, nil
		},
		GroupShowFunc: func(ctx context.Context, id string) (*domain.Group, error) {
			for _, g := range existing {
				if g.Name == id {
					grp := g
					return &grp, nil
				}
			}
			return nil, domain.NotFoundError{Action: "group_show", ID: id}
		},
		GroupCreateFunc: func(ctx context.Context, group domain.Group) (*domain.Group, error) {
			return &group, nil
		},
		GroupUpdateFunc: func(ctx context.Context, group domain.Group) (*domain.Group, error) {
			return &group, nil
		},
	}
}

func testProgress() *ProgressStoreMock {
	return &ProgressStoreMock{
		SaveProgressFunc:  func(key string, index int) error { return nil },
		ProgressFunc:      func(key string) (int, bool, error) { return 0, false, nil },
		ClearProgressFunc: func(key string) error { return nil },
	}
}

const mbaRecordJSON string = `{
	"institute": {
		"instName": "Marine Biological Association of the UK",
		"instAddress": "Citadel Hill",
		"city": "Plymouth",
		"postcode": "PL1 2PB",
		"country": "United Kingdom",
		"countryCode": "GB",
		"instUrl": "https://www.mba.ac.uk",
		"instFax": "",
		"edmoCode": 545,
		"acronym": "MBA",
		"instLogo": "https://oceanexpert.org/upload/logo/7857.png"
	},
	"members": {"count": 42}
}`
