package datemath

// ISOLayout is the calendar-date layout used for every normalized date.
const ISOLayout = "2006-01-02"
