package report

import (
	"fmt"
	"os"
)

// ImportFile parses one export file and stores the result, skipping the
// parse when the stored run matches the file's current mtime and size (the
// cached result is returned instead). force bypasses the skip, which matters
// after corrections change how tokens resolve.
func ImportFile(db *DB, path string, build func(text string) *Result, force bool) (*Result, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", path, err)
	}
	mtime := info.ModTime().Unix()
	size := info.Size()

	if !force {
		stored, err := db.GetRunInfo(path)
		if err != nil {
			return nil, false, err
		}
		if stored != nil && stored.Mtime == mtime && stored.Size == size {
			res, err := storedResult(db, path)
			if err != nil {
				return nil, false, err
			}
			return res, true, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	res := build(string(data))
	if err := db.SaveRun(path, mtime, size, res); err != nil {
		return nil, false, fmt.Errorf("save run: %w", err)
	}
	return res, false, nil
}

func storedResult(db *DB, path string) (*Result, error) {
	rows, err := db.GetRecords(path)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, r := range rows {
		res.Records = append(res.Records, UserRecord{
			Name:       r.Name,
			Contacts:   splitCell(r.Contacts),
			Teams:      splitCell(r.Teams),
			Comments:   splitCell(r.Comments),
			Unresolved: splitCell(r.Unresolved),
		})
	}

	unknowns, err := db.Raw().Query(
		"SELECT token, count FROM unknown_tokens WHERE file_path = ? ORDER BY count DESC, token",
		path,
	)
	if err != nil {
		return nil, err
	}
	defer unknowns.Close()
	for unknowns.Next() {
		var u UnknownCount
		if err := unknowns.Scan(&u.Token, &u.Count); err != nil {
			return nil, err
		}
		res.Unknowns = append(res.Unknowns, u)
	}
	return res, unknowns.Err()
}
