package bleve

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/search/query"

	"github.com/tdelacour/semesterbuddy"
)

type NoteIndex struct {
	index bleve.Index
}

func (s *NoteIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		tm := bleve.NewTextFieldMapping()
		tm.Analyzer = en.AnalyzerName

		dm := bleve.NewDocumentMapping()
		dm.AddFieldMappingsAt("title", tm)
		dm.AddFieldMappingsAt("content", tm)

		mapping := bleve.NewIndexMapping()
		mapping.AddDocumentMapping("note", dm)
		mapping.DefaultMapping = dm

		index, err = bleve.New(path, mapping)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *NoteIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *NoteIndex) Index(note *semesterbuddy.Note) error {
	data := map[string]interface{}{
		"title":   note.Title,
		"content": note.Content,
	}

	return s.index.Index(strconv.Itoa(note.ID), data)
}

func (s *NoteIndex) Delete(id int) error {
	return s.index.Delete(strconv.Itoa(id))
}

// Search returns the ids of the notes matching q, restricted to the ids
// given by the caller. The restriction is what scopes the search to the
// notes of a single user.
func (s *NoteIndex) Search(ids []int, q string) ([]int, error) {
	bq := andQ(
		query.NewMatchAllQuery(),
		s.searchTitleOrContent(q),
		s.searchIDs(ids),
	)

	searchRequest := bleve.NewSearchRequest(bq)
	searchRequest.SortBy([]string{"_id"})
	searchRequest.Size = len(ids)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	found := make([]int, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		found[i], err = strconv.Atoi(hit.ID)
		if err != nil {
			return nil, err
		}
	}

	return found, nil
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}

func (s *NoteIndex) searchTitleOrContent(queryString string) query.Query {
	words := strings.Fields(queryString)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			s.prefixQuery(word, "title"),
			s.prefixQuery(word, "content"),
		))
	}

	return andQ(ands...)
}

func (s *NoteIndex) prefixQuery(queryString, field string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(en.AnalyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncs := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncs[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncs)
}

func (*NoteIndex) searchIDs(ids []int) query.Query {
	docIDs := make([]string, len(ids))
	for i, id := range ids {
		docIDs[i] = strconv.Itoa(id)
	}
	return query.NewDocIDQuery(docIDs)
}
